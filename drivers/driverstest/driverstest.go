// Package driverstest holds the checks every screenk.Driver must pass, run
// against htmldom always and against real browsers when
// SCREENER_BROWSER_TESTS=1.
package driverstest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/screener/screen"
	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

// Page every driver is checked against
const Page = `<!DOCTYPE html>
<html><head><title>screener</title></head><body>
<h1>Welcome</h1>
<button role="button" name="save">Save</button>
<p>Submit</p>
<p>Submit form</p>
<label for="email">Email</label>
<input id="email" name="email" placeholder="you@example.com" value="me@example.com">
<label id="pw-label">Password</label>
<input type="password" name="password" aria-labelledby="pw-label">
<label>Orphan</label>
<img alt="Logo" name="logo" src="data:,">
<span title="Help" data-testid="help" name="help">?</span>
<a href="#top" class="nav link" name="home">Home</a>
<select name="color"><option value="red">Red</option><option value="blue" selected>Blue</option></select>
<div id="late"></div>
<script>
setTimeout(function() {
	var d = document.createElement("div");
	d.setAttribute("role", "alert");
	d.setAttribute("name", "alert");
	d.textContent = "Saved";
	document.getElementById("late").appendChild(d);
}, 200);
</script>
</body></html>`

// RequireBrowser skips t unless browser tests were asked for
func RequireBrowser(t *testing.T) {
	if os.Getenv("SCREENER_BROWSER_TESTS") != "1" {
		t.Skip("set SCREENER_BROWSER_TESTS=1 to run against a real browser")
	}
}

// Serve Page over http for the length of the test
func Serve(t *testing.T) string {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, Page)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func name(t *testing.T, el screenk.Element) string {
	v, _, err := el.Attribute(context.Background(), "name")
	require.NoError(t, err)
	return v
}

// Conformance checks d against Page. The delayed alert is only checked when
// scripts run.
func Conformance(t *testing.T, d screenk.Driver, scripts bool) {
	ctx := context.Background()
	s := screen.New(d, nil)

	t.Run("semantic", func(t *testing.T) {
		var tests = []struct {
			loc  locator.Locator
			name string
		}{
			{locator.Role("button"), "save"},
			{locator.LabelText("Email"), "email"},
			{locator.LabelText("Password"), "password"},
			{locator.PlaceholderText("you@example.com"), "email"},
			{locator.PlaceholderText("you@", locator.Inexact()), "email"},
			{locator.AltText("Logo"), "logo"},
			{locator.Title("Help"), "help"},
			{locator.TestID("help"), "help"},
			{locator.DisplayValue("blue"), "color"},
			{locator.DisplayValue("me@example.com"), "email"},
			{locator.Text("Home"), "home"},
		}
		for _, tt := range tests {
			el, err := s.Get(ctx, tt.loc)
			require.NoError(t, err, tt.loc.String())
			assert.Equal(t, tt.name, name(t, el), tt.loc.String())
		}
	})

	t.Run("structural", func(t *testing.T) {
		var tests = []struct {
			loc   locator.Locator
			count int
		}{
			{locator.ID("email"), 1},
			{locator.Name("password"), 1},
			{locator.ClassName("link"), 1},
			{locator.LinkText("Home"), 1},
			{locator.PartialLinkText("Hom"), 1},
			{locator.TagName("select"), 1},
			{locator.CSS("p"), 2},
			{locator.XPath("//p"), 2},
		}
		for _, tt := range tests {
			els, err := s.QueryAll(ctx, tt.loc)
			require.NoError(t, err, tt.loc.String())
			assert.Len(t, els, tt.count, tt.loc.String())
		}
	})

	t.Run("cardinality", func(t *testing.T) {
		el, err := s.QueryByText(ctx, "Missing")
		assert.NoError(t, err)
		assert.Nil(t, el)

		_, err = s.GetByText(ctx, "Missing")
		assert.True(t, screenk.IsNotFound(err), "%v", err)

		_, err = s.GetByText(ctx, "Submit", screen.Inexact())
		assert.True(t, screenk.IsMultiple(err), "%v", err)

		els, err := s.GetAllByText(ctx, "Submit", screen.Inexact())
		require.NoError(t, err)
		assert.Len(t, els, 2)

		el, err = s.QueryByLabelText(ctx, "Orphan")
		assert.NoError(t, err)
		assert.Nil(t, el)
	})

	if !scripts {
		return
	}
	t.Run("find", func(t *testing.T) {
		el, err := s.FindByRole(ctx, "alert", screen.Timeout(5*time.Second), screen.PollInterval(50*time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, "alert", name(t, el))
	})
}

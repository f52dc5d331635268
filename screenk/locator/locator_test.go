package locator_test

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/screener/drivers/htmldom"
	"gitlab.com/screener/mock"
	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

const page = `<html><body>
<button role="button">OK</button>
<div role="buttonish">Close</div>
<p>Submit</p>
<p>Submit form</p>
<input placeholder="Search" id="search">
<input placeholder="Search users" name="users">
<img alt="Logo" src="logo.png">
<img alt="Logo dark" src="logo-dark.png">
<span title="Help">?</span>
<span title="Help me">??</span>
<div data-testid="card">a</div>
<div data-testid="card-2">b</div>
<div data-qa="card">c</div>
<a href="/">Home</a>
<a href="/about" class="nav link">About us</a>
<p>it's "quoted"</p>
</body></html>`

func parse(t *testing.T, markup string) *htmldom.Document {
	doc, err := htmldom.ParseString(markup)
	if err != nil {
		t.Fatalf("error parsing document: %s\n", err)
	}
	return doc
}

func resolve(t *testing.T, d screenk.Driver, loc locator.Locator) []screenk.Element {
	els, err := loc.Resolve(context.Background(), d)
	if err != nil {
		t.Fatalf("error resolving %s: %s\n", loc, err)
	}
	return els
}

func TestExactAndSubstring(t *testing.T) {
	doc := parse(t, page)

	var tests = []struct {
		name    string
		exact   locator.Locator
		inexact locator.Locator
	}{
		{"role", locator.Role("button"), locator.Role("button", locator.Inexact())},
		{"text", locator.Text("Submit"), locator.Text("Submit", locator.Inexact())},
		{"placeholder", locator.PlaceholderText("Search"), locator.PlaceholderText("Search", locator.Inexact())},
		{"alt", locator.AltText("Logo"), locator.AltText("Logo", locator.Exact(false))},
		{"title", locator.Title("Help"), locator.Title("Help", locator.Inexact())},
		{"testid", locator.TestID("card"), locator.TestID("card", locator.Inexact())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exact := resolve(t, doc, tt.exact)
			if len(exact) != 1 {
				t.Fatalf("expected 1 exact match got %d: %s\n", len(exact), spew.Sdump(exact))
			}
			inexact := resolve(t, doc, tt.inexact)
			if len(inexact) != 2 {
				t.Fatalf("expected 2 substring matches got %d: %s\n", len(inexact), spew.Sdump(inexact))
			}
		})
	}
}

func TestNoMatch(t *testing.T) {
	doc := parse(t, page)
	for _, loc := range []locator.Locator{
		locator.Text("Missing"),
		locator.Role("dialog"),
		locator.Text("submit"),
		locator.DisplayValue("nothing"),
		locator.LabelText("Email"),
	} {
		els := resolve(t, doc, loc)
		assert.Empty(t, els, loc.String())
	}
}

func TestTestIDAttribute(t *testing.T) {
	doc := parse(t, page)

	loc := locator.TestID("card", locator.TestIDAttribute("data-qa"))
	assert.Equal(t, "data-qa", loc.Attribute())
	els := resolve(t, doc, loc)
	require.Len(t, els, 1)
	v, ok, err := els[0].Attribute(context.Background(), "data-qa")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "card", v)

	// empty name keeps the default
	assert.Equal(t, "data-testid", locator.TestID("card", locator.TestIDAttribute("")).Attribute())
}

func TestQuoting(t *testing.T) {
	doc := parse(t, page)

	els := resolve(t, doc, locator.Text(`it's "quoted"`))
	assert.Len(t, els, 1)

	raw := locator.Text(`Submit" or text()="OK`, locator.Raw())
	assert.Equal(t, screenk.XPath(`//*[text() = "Submit" or text()="OK"]`), raw.Query())
	els = resolve(t, doc, raw)
	assert.Len(t, els, 2)

	quoted := locator.Text(`Submit" or text()="OK`)
	assert.Empty(t, resolve(t, doc, quoted))
}

func TestStructural(t *testing.T) {
	doc := parse(t, page)

	var tests = []struct {
		loc   locator.Locator
		count int
	}{
		{locator.CSS("img"), 2},
		{locator.XPath("//span"), 2},
		{locator.ID("search"), 1},
		{locator.Name("users"), 1},
		{locator.TagName("a"), 2},
		{locator.LinkText("Home"), 1},
		{locator.PartialLinkText("About"), 1},
		{locator.ClassName("link"), 1},
		{locator.FromQuery(screenk.NewQuery(screenk.ByID, "search")), 1},
	}

	for _, tt := range tests {
		els := resolve(t, doc, tt.loc)
		if len(els) != tt.count {
			t.Fatalf("%s: expected %d got %d\n", tt.loc, tt.count, len(els))
		}
		if !tt.loc.Kind().Structural() {
			t.Fatalf("%s should be structural\n", tt.loc)
		}
	}
}

func TestPassthroughSendsQueryUnchanged(t *testing.T) {
	d := mock.MakeMockDriver(nil)
	_, err := locator.ClassName("btn").Resolve(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, screenk.NewQuery(screenk.ByClassName, "btn"), d.LastQuery())
	assert.Equal(t, 1, d.Calls())
}

func TestDisplayValue(t *testing.T) {
	doc := parse(t, `<html><body>
<input id="greeting" value="hello">
<textarea id="notes">hello world</textarea>
<select id="pick"><option value="a">A</option><option value="b" selected>B</option></select>
<input id="empty">
<div value="hello">not a control</div>
</body></html>`)
	ctx := context.Background()

	els := resolve(t, doc, locator.DisplayValue("hello"))
	require.Len(t, els, 1)
	id, _, _ := els[0].Attribute(ctx, "id")
	assert.Equal(t, "greeting", id)

	assert.Len(t, resolve(t, doc, locator.DisplayValue("hello", locator.Inexact())), 2)

	els = resolve(t, doc, locator.DisplayValue("b"))
	require.Len(t, els, 1)
	id, _, _ = els[0].Attribute(ctx, "id")
	assert.Equal(t, "pick", id)

	// typing changes the live value, not the markup
	input := resolve(t, doc, locator.ID("empty"))[0].(*htmldom.Element)
	doc.SetValue(input, "typed")
	els = resolve(t, doc, locator.DisplayValue("typed"))
	require.Len(t, els, 1)
	assert.Equal(t, input, els[0])
	assert.Equal(t, screenk.XPath("//*[self::input or self::textarea or self::select]"), locator.DisplayValue("x").Query())
}

func TestDisplayValueSkipsStaleAndAbsent(t *testing.T) {
	live := &mock.Element{Label: "live", Attrs: map[string]string{"value": "x"}}
	stale := &mock.Element{Label: "stale", Stale: true}
	absent := &mock.Element{Label: "absent", Attrs: map[string]string{}}
	d := mock.MakeSequenceDriver([]screenk.Element{stale, absent, live})

	els := resolve(t, d, locator.DisplayValue("x"))
	require.Len(t, els, 1)
	assert.Equal(t, live, els[0])
}

func TestDriverErrorsPropagate(t *testing.T) {
	boom := screenk.ErrInvalidConfig
	d := mock.MakeErrorDriver(boom)
	for _, loc := range []locator.Locator{
		locator.Role("button"),
		locator.DisplayValue("x"),
		locator.LabelText("Email"),
		locator.CSS("p"),
	} {
		_, err := loc.Resolve(context.Background(), d)
		assert.ErrorIs(t, err, boom, loc.String())
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, `role "button"`, locator.Role("button").String())
	assert.Equal(t, `text ~"Sub"`, locator.Text("Sub", locator.Inexact()).String())
	assert.Equal(t, `label text "Email"`, locator.LabelText("Email").String())
	assert.Equal(t, `css selector=#main`, locator.CSS("#main").String())
}

func TestParseKindAndNew(t *testing.T) {
	for _, k := range locator.Kinds() {
		got, err := locator.ParseKind(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got)

		loc, err := locator.New(k, "x")
		require.NoError(t, err, k.String())
		assert.Equal(t, k, loc.Kind())
	}

	for name, kind := range map[string]locator.Kind{
		"css":              locator.KindCSS,
		"testid":           locator.KindTestID,
		"test-id":          locator.KindTestID,
		"placeholder_text": locator.KindPlaceholderText,
		"Label":            locator.KindLabelText,
		"value":            locator.KindDisplayValue,
	} {
		got, err := locator.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, kind, got, name)
	}

	_, err := locator.ParseKind("shadow")
	assert.Error(t, err)
	_, err = locator.New(locator.Kind(99), "x")
	assert.Error(t, err)
	assert.Len(t, locator.Kinds(), 16)
}

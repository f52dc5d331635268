package locator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/screener/mock"
	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

const form = `<html><body>
<label for="email">Email</label>
<input id="email" name="email">
<label id="pw-label">Password</label>
<input name="password" aria-labelledby="pw-label">
<label>Orphan</label>
<input name="orphan">
<label for="">Blank</label>
<label for="nowhere">Dangling</label>
<label for="it's">Quoted</label>
<input id="it's" name="quoted">
</body></html>`

func name(t *testing.T, el screenk.Element) string {
	v, _, err := el.Attribute(context.Background(), "name")
	if err != nil {
		t.Fatalf("error reading name: %s\n", err)
	}
	return v
}

func TestLabelText(t *testing.T) {
	doc := parse(t, form)

	var tests = []struct {
		text string
		want []string
	}{
		{"Email", []string{"email"}},
		{"Password", []string{"password"}},
		{"Quoted", []string{"quoted"}},
		{"Orphan", []string{}},
		{"Blank", []string{}},
		{"Dangling", []string{}},
	}

	for _, tt := range tests {
		els := resolve(t, doc, locator.LabelText(tt.text))
		got := make([]string, 0, len(els))
		for _, el := range els {
			got = append(got, name(t, el))
		}
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestLabelTextInexactKeepsLabelOrder(t *testing.T) {
	doc := parse(t, form)
	els := resolve(t, doc, locator.LabelText("a", locator.Inexact()))
	got := make([]string, 0, len(els))
	for _, el := range els {
		got = append(got, name(t, el))
	}
	// Orphan, Blank and Dangling label nothing
	assert.Equal(t, []string{"email", "password"}, got)
}

func TestLabelQuery(t *testing.T) {
	assert.Equal(t, screenk.XPath(`//label[text() = "Email"]`), locator.LabelText("Email").Query())
	assert.Equal(t, screenk.XPath(`//label[contains(text(), "Em")]`), locator.LabelText("Em", locator.Inexact()).Query())
}

func TestLabelTargetsIgnoresStaleLabels(t *testing.T) {
	doc := parse(t, form)
	stale := &mock.Element{Label: "stale label", Stale: true}
	labels, err := doc.FindElements(context.Background(), locator.LabelText("Email").Query())
	require.NoError(t, err)

	els, err := locator.LabelTargets(context.Background(), doc, append([]screenk.Element{stale}, labels...))
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, "email", name(t, els[0]))
}

func TestLabelTargetsQueries(t *testing.T) {
	forLabel := &mock.Element{Label: "for", Attrs: map[string]string{"for": "email"}}
	idLabel := &mock.Element{Label: "id", Attrs: map[string]string{"id": "pw"}}
	d := mock.MakeMockDriver(nil)

	_, err := locator.LabelTargets(context.Background(), d, []screenk.Element{forLabel, idLabel})
	require.NoError(t, err)
	require.Len(t, d.Queries, 2)
	assert.Equal(t, screenk.NewQuery(screenk.ByID, "email"), d.Queries[0])
	assert.Equal(t, screenk.CSS("[aria-labelledby='pw']"), d.Queries[1])
}

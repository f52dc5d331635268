package screenk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/screener/screenk"
)

func TestXPathLiteral(t *testing.T) {
	var tests = []struct {
		in  string
		out string
	}{
		{"", `""`},
		{"Submit", `"Submit"`},
		{`say "hi"`, `'say "hi"'`},
		{"it's", `"it's"`},
		{`it's "hi"`, `concat("it's ", '"', "hi", '"')`},
		{`"`, `'"'`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, screenk.XPathLiteral(tt.in), "literal of %q", tt.in)
	}
}

func TestCSSString(t *testing.T) {
	assert.Equal(t, `'name'`, screenk.CSSString("name"))
	assert.Equal(t, `'it\'s'`, screenk.CSSString("it's"))
	assert.Equal(t, `'a\\b'`, screenk.CSSString(`a\b`))
}

func TestNormalize(t *testing.T) {
	var tests = []struct {
		in  screenk.Query
		out screenk.Query
	}{
		{screenk.CSS("div > p"), screenk.CSS("div > p")},
		{screenk.XPath("//p"), screenk.XPath("//p")},
		{screenk.NewQuery(screenk.ByID, "main"), screenk.CSS("[id='main']")},
		{screenk.NewQuery(screenk.ByName, "q"), screenk.CSS("[name='q']")},
		{screenk.NewQuery(screenk.ByTagName, "button"), screenk.CSS("button")},
		{screenk.NewQuery(screenk.ByClassName, "btn"), screenk.XPath(`//*[contains(concat(' ', normalize-space(@class), ' '), " btn ")]`)},
		{screenk.NewQuery(screenk.ByLinkText, " Home "), screenk.XPath(`//a[normalize-space(.) = "Home"]`)},
		{screenk.NewQuery(screenk.ByPartialLinkText, "Ho"), screenk.XPath(`//a[contains(normalize-space(.), "Ho")]`)},
	}

	for _, tt := range tests {
		got, err := tt.in.Normalize()
		require.NoError(t, err, tt.in.String())
		assert.Equal(t, tt.out, got, tt.in.String())
	}
}

func TestNormalizeInvalid(t *testing.T) {
	for _, q := range []screenk.Query{
		screenk.NewQuery(screenk.ByTagName, "div p"),
		screenk.NewQuery(screenk.ByTagName, ""),
		screenk.NewQuery(screenk.ByClassName, "btn primary"),
		screenk.NewQuery(screenk.By(42), "x"),
	} {
		_, err := q.Normalize()
		var qerr *screenk.InvalidQueryErr
		if !assert.ErrorAs(t, err, &qerr, q.String()) {
			continue
		}
		assert.NotEmpty(t, qerr.Message)
	}
}

func TestQueryString(t *testing.T) {
	assert.Equal(t, "css selector=#main", screenk.CSS("#main").String())
	assert.Equal(t, "xpath=//p", screenk.XPath("//p").String())
}

func TestParseBy(t *testing.T) {
	for _, by := range screenk.AllBy() {
		got, err := screenk.ParseBy(by.String())
		if err != nil {
			t.Fatalf("error parsing %s: %s\n", by, err)
		}
		if got != by {
			t.Fatalf("expected %s got %s\n", by, got)
		}
	}

	got, err := screenk.ParseBy("CSS")
	require.NoError(t, err)
	assert.Equal(t, screenk.ByCSSSelector, got)

	got, err = screenk.ParseBy("partial_link-text")
	require.NoError(t, err)
	assert.Equal(t, screenk.ByPartialLinkText, got)

	_, err = screenk.ParseBy("shadow root")
	assert.Error(t, err)
	assert.False(t, screenk.By(0).Valid())
	assert.Equal(t, "By(0)", screenk.By(0).String())
}

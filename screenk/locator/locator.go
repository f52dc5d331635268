// Package locator translates human facing selectors (role, text, label...)
// into structural queries and resolves them against a screenk.Driver.
package locator

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/screener/screenk"
)

// Kind of locator
type Kind int8

// revive:disable:var-naming
const (
	KindCSS Kind = iota + 1
	KindXPath
	KindID
	KindName
	KindTagName
	KindLinkText
	KindPartialLinkText
	KindClassName
	KindRole
	KindText
	KindPlaceholderText
	KindLabelText
	KindAltText
	KindTitle
	KindTestID
	KindDisplayValue
)

var kindNames = map[Kind]string{
	KindCSS:             "css selector",
	KindXPath:           "xpath",
	KindID:              "id",
	KindName:            "name",
	KindTagName:         "tag name",
	KindLinkText:        "link text",
	KindPartialLinkText: "partial link text",
	KindClassName:       "class name",
	KindRole:            "role",
	KindText:            "text",
	KindPlaceholderText: "placeholder text",
	KindLabelText:       "label text",
	KindAltText:         "alt text",
	KindTitle:           "title",
	KindTestID:          "test id",
	KindDisplayValue:    "display value",
}

var structuralKinds = map[Kind]screenk.By{
	KindCSS:             screenk.ByCSSSelector,
	KindXPath:           screenk.ByXPath,
	KindID:              screenk.ByID,
	KindName:            screenk.ByName,
	KindTagName:         screenk.ByTagName,
	KindLinkText:        screenk.ByLinkText,
	KindPartialLinkText: screenk.ByPartialLinkText,
	KindClassName:       screenk.ByClassName,
}

// Kinds returns all locator kinds in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := KindCSS; k <= KindDisplayValue; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Structural answers if the kind passes its selector through unchanged
func (k Kind) Structural() bool {
	_, ok := structuralKinds[k]
	return ok
}

// ParseKind by name, "placeholder-text", "placeholder_text" and "placeholder text"
// are all accepted. "css" and "testid" are accepted as shorthands.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", " ", "_", " ").Replace(n)
	switch n {
	case "css":
		return KindCSS, nil
	case "testid":
		return KindTestID, nil
	case "placeholder":
		return KindPlaceholderText, nil
	case "label":
		return KindLabelText, nil
	case "alt":
		return KindAltText, nil
	case "value":
		return KindDisplayValue, nil
	}
	for k, s := range kindNames {
		if s == n {
			return k, nil
		}
	}
	return 0, &screenk.InvalidQueryErr{Message: fmt.Sprintf("unknown locator kind %q", name)}
}

// Locator resolves to zero or more elements of the live document. Resolve is
// a pure function of the locator and the current DOM.
type Locator interface {
	Kind() Kind
	// Query is the structural query the locator starts from
	Query() screenk.Query
	Resolve(ctx context.Context, d screenk.Driver) ([]screenk.Element, error)
	String() string
}

type match struct {
	selector string
	exact    bool
	raw      bool
	attr     string
}

// Option changes how a semantic locator matches its selector
type Option func(m *match)

// Exact equality (true, the default) or substring containment (false)
func Exact(exact bool) Option {
	return func(m *match) {
		m.exact = exact
	}
}

// Inexact is Exact(false)
func Inexact() Option {
	return Exact(false)
}

// Raw interpolates the selector into the query without quoting, so callers
// can splice XPath into the predicate.
func Raw() Option {
	return func(m *match) {
		m.raw = true
	}
}

// TestIDAttribute overrides the attribute test id locators match on
func TestIDAttribute(name string) Option {
	return func(m *match) {
		if name != "" {
			m.attr = name
		}
	}
}

func newMatch(selector string, opts []Option) match {
	m := match{selector: selector, exact: true}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// New locator of the given kind. Options are ignored by structural kinds.
func New(kind Kind, selector string, opts ...Option) (Locator, error) {
	if by, ok := structuralKinds[kind]; ok {
		return Passthrough{kind: kind, q: screenk.NewQuery(by, selector)}, nil
	}
	switch kind {
	case KindRole:
		return Role(selector, opts...), nil
	case KindText:
		return Text(selector, opts...), nil
	case KindPlaceholderText:
		return PlaceholderText(selector, opts...), nil
	case KindLabelText:
		return LabelText(selector, opts...), nil
	case KindAltText:
		return AltText(selector, opts...), nil
	case KindTitle:
		return Title(selector, opts...), nil
	case KindTestID:
		return TestID(selector, opts...), nil
	case KindDisplayValue:
		return DisplayValue(selector, opts...), nil
	}
	return nil, &screenk.InvalidQueryErr{Message: "unknown locator kind " + kind.String()}
}

// predicate builds the `accessor = "v"` or `contains(accessor, "v")` fragment
func predicate(accessor string, m match) string {
	lit := literal(m)
	if m.exact {
		return accessor + " = " + lit
	}
	return "contains(" + accessor + ", " + lit + ")"
}

func literal(m match) string {
	if m.raw {
		return `"` + m.selector + `"`
	}
	return screenk.XPathLiteral(m.selector)
}

func describe(kind Kind, m match) string {
	if m.exact {
		return fmt.Sprintf("%s %q", kind, m.selector)
	}
	return fmt.Sprintf("%s ~%q", kind, m.selector)
}

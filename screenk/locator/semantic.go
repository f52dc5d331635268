package locator

import (
	"context"
	"strings"

	"gitlab.com/screener/screenk"
)

// AttrMatch matches elements on the value of a single attribute
type AttrMatch struct {
	kind Kind
	m    match
}

// Role attribute
func Role(role string, opts ...Option) AttrMatch {
	m := newMatch(role, opts)
	m.attr = "role"
	return AttrMatch{kind: KindRole, m: m}
}

// PlaceholderText of inputs and textareas
func PlaceholderText(text string, opts ...Option) AttrMatch {
	m := newMatch(text, opts)
	m.attr = "placeholder"
	return AttrMatch{kind: KindPlaceholderText, m: m}
}

// AltText of images and areas
func AltText(text string, opts ...Option) AttrMatch {
	m := newMatch(text, opts)
	m.attr = "alt"
	return AttrMatch{kind: KindAltText, m: m}
}

// Title attribute
func Title(title string, opts ...Option) AttrMatch {
	m := newMatch(title, opts)
	m.attr = "title"
	return AttrMatch{kind: KindTitle, m: m}
}

// TestID matches data-testid, or the attribute given with TestIDAttribute
func TestID(id string, opts ...Option) AttrMatch {
	m := match{selector: id, exact: true, attr: screenk.DefaultTestIDAttribute}
	for _, opt := range opts {
		opt(&m)
	}
	return AttrMatch{kind: KindTestID, m: m}
}

func (a AttrMatch) Kind() Kind { return a.kind }

// Attribute the locator matches on
func (a AttrMatch) Attribute() string { return a.m.attr }

func (a AttrMatch) Query() screenk.Query {
	return screenk.XPath("//*[" + predicate("@"+a.m.attr, a.m) + "]")
}

func (a AttrMatch) Resolve(ctx context.Context, d screenk.Driver) ([]screenk.Element, error) {
	return d.FindElements(ctx, a.Query())
}

func (a AttrMatch) String() string {
	return describe(a.kind, a.m)
}

// TextMatch matches elements owning a text node with the selector
type TextMatch struct {
	m match
}

// Text content
func Text(text string, opts ...Option) TextMatch {
	return TextMatch{m: newMatch(text, opts)}
}

func (t TextMatch) Kind() Kind { return KindText }

func (t TextMatch) Query() screenk.Query {
	return screenk.XPath("//*[" + predicate("text()", t.m) + "]")
}

func (t TextMatch) Resolve(ctx context.Context, d screenk.Driver) ([]screenk.Element, error) {
	return d.FindElements(ctx, t.Query())
}

func (t TextMatch) String() string {
	return describe(KindText, t.m)
}

// ValueMatch matches form controls on their current value. The filtering
// runs in process since the value attribute in the markup does not follow
// what the user typed.
type ValueMatch struct {
	m match
}

var formControls = screenk.XPath("//*[self::input or self::textarea or self::select]")

// DisplayValue of input, textarea and select elements
func DisplayValue(value string, opts ...Option) ValueMatch {
	return ValueMatch{m: newMatch(value, opts)}
}

func (v ValueMatch) Kind() Kind { return KindDisplayValue }

func (v ValueMatch) Query() screenk.Query { return formControls }

func (v ValueMatch) Resolve(ctx context.Context, d screenk.Driver) ([]screenk.Element, error) {
	controls, err := d.FindElements(ctx, formControls)
	if err != nil {
		return nil, err
	}

	elements := make([]screenk.Element, 0, len(controls))
	for _, el := range controls {
		value, ok, err := el.Attribute(ctx, "value")
		if err != nil {
			if screenk.IsStale(err) {
				continue
			}
			return nil, err
		}
		if !ok {
			continue
		}
		if v.matches(value) {
			elements = append(elements, el)
		}
	}
	return elements, nil
}

func (v ValueMatch) matches(value string) bool {
	if v.m.exact {
		return value == v.m.selector
	}
	return strings.Contains(value, v.m.selector)
}

func (v ValueMatch) String() string {
	return describe(KindDisplayValue, v.m)
}

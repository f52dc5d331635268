package locator

import (
	"context"

	"gitlab.com/screener/screenk"
)

// Passthrough sends its structural query to the driver verbatim.
type Passthrough struct {
	kind Kind
	q    screenk.Query
}

// FromQuery wraps an existing structural query
func FromQuery(q screenk.Query) Passthrough {
	for k, by := range structuralKinds {
		if by == q.By {
			return Passthrough{kind: k, q: q}
		}
	}
	return Passthrough{kind: KindXPath, q: q}
}

// CSS selector
func CSS(selector string) Passthrough {
	return Passthrough{kind: KindCSS, q: screenk.CSS(selector)}
}

// XPath expression
func XPath(selector string) Passthrough {
	return Passthrough{kind: KindXPath, q: screenk.XPath(selector)}
}

// ID attribute
func ID(id string) Passthrough {
	return Passthrough{kind: KindID, q: screenk.NewQuery(screenk.ByID, id)}
}

// Name attribute
func Name(name string) Passthrough {
	return Passthrough{kind: KindName, q: screenk.NewQuery(screenk.ByName, name)}
}

// TagName of the element
func TagName(tag string) Passthrough {
	return Passthrough{kind: KindTagName, q: screenk.NewQuery(screenk.ByTagName, tag)}
}

// LinkText of an anchor
func LinkText(text string) Passthrough {
	return Passthrough{kind: KindLinkText, q: screenk.NewQuery(screenk.ByLinkText, text)}
}

// PartialLinkText of an anchor
func PartialLinkText(text string) Passthrough {
	return Passthrough{kind: KindPartialLinkText, q: screenk.NewQuery(screenk.ByPartialLinkText, text)}
}

// ClassName, a single class
func ClassName(class string) Passthrough {
	return Passthrough{kind: KindClassName, q: screenk.NewQuery(screenk.ByClassName, class)}
}

func (p Passthrough) Kind() Kind { return p.kind }

func (p Passthrough) Query() screenk.Query { return p.q }

func (p Passthrough) Resolve(ctx context.Context, d screenk.Driver) ([]screenk.Element, error) {
	return d.FindElements(ctx, p.q)
}

func (p Passthrough) String() string {
	return p.q.String()
}

package locator

import (
	"context"

	"gitlab.com/screener/screenk"
)

// LabelMatch finds the elements labelled by a <label> with matching text
type LabelMatch struct {
	m match
}

// LabelText of the label associated with the element
func LabelText(text string, opts ...Option) LabelMatch {
	return LabelMatch{m: newMatch(text, opts)}
}

func (l LabelMatch) Kind() Kind { return KindLabelText }

// Query for the labels themselves, not the labelled elements
func (l LabelMatch) Query() screenk.Query {
	return screenk.XPath("//label[" + predicate("text()", l.m) + "]")
}

func (l LabelMatch) Resolve(ctx context.Context, d screenk.Driver) ([]screenk.Element, error) {
	labels, err := d.FindElements(ctx, l.Query())
	if err != nil {
		return nil, err
	}
	return l.Targets(ctx, d, labels)
}

// Targets resolves each label to the elements it labels, in label order.
func (l LabelMatch) Targets(ctx context.Context, d screenk.Driver, labels []screenk.Element) ([]screenk.Element, error) {
	return labelTargets(ctx, d, labels, l.m.raw)
}

func (l LabelMatch) String() string {
	return describe(KindLabelText, l.m)
}

// LabelTargets resolves label elements to the elements they label. The for
// attribute is used when present, otherwise the label id is looked up in
// aria-labelledby. Labels with neither contribute nothing.
func LabelTargets(ctx context.Context, d screenk.Driver, labels []screenk.Element) ([]screenk.Element, error) {
	return labelTargets(ctx, d, labels, false)
}

func labelTargets(ctx context.Context, d screenk.Driver, labels []screenk.Element, raw bool) ([]screenk.Element, error) {
	elements := make([]screenk.Element, 0, len(labels))
	for _, label := range labels {
		found, err := labelTarget(ctx, d, label, raw)
		if err != nil {
			return nil, err
		}
		elements = append(elements, found...)
	}
	return elements, nil
}

func labelTarget(ctx context.Context, d screenk.Driver, label screenk.Element, raw bool) ([]screenk.Element, error) {
	forID, ok, err := label.Attribute(ctx, "for")
	if err != nil {
		return nil, ignoreStale(err)
	}
	if ok {
		if forID == "" {
			return nil, nil
		}
		return d.FindElements(ctx, screenk.NewQuery(screenk.ByID, forID))
	}

	id, ok, err := label.Attribute(ctx, "id")
	if err != nil {
		return nil, ignoreStale(err)
	}
	if !ok || id == "" {
		return nil, nil
	}

	quoted := screenk.CSSString(id)
	if raw {
		quoted = "'" + id + "'"
	}
	return d.FindElements(ctx, screenk.CSS("[aria-labelledby="+quoted+"]"))
}

func ignoreStale(err error) error {
	if screenk.IsStale(err) {
		return nil
	}
	return err
}

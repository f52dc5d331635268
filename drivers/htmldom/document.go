// Package htmldom is a screenk.Driver over a parsed HTML document. XPath is
// evaluated with htmlquery and CSS with cascadia. It is used by the cli for
// static files and by tests that need a DOM they can change while a Find
// is polling.
package htmldom

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/screener/screenk"
	"golang.org/x/net/html"
)

// Document is a mutable HTML tree that can be queried concurrently
type Document struct {
	mu     sync.RWMutex
	root   *html.Node
	values map[*html.Node]string // live form values set through SetValue
}

// Parse an HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html")
	}
	return &Document{root: root, values: make(map[*html.Node]string)}, nil
}

// ParseString is Parse for in memory markup
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// FindElements matching q, in document order.
func (d *Document) FindElements(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
	nq, err := q.Normalize()
	if err != nil {
		return nil, err
	}

	d.mu.RLock()
	nodes, err := d.query(nq)
	d.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	elements := make([]screenk.Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		elements = append(elements, &Element{doc: d, node: n})
	}
	log.Ctx(ctx).Debug().Str("query", q.String()).Int("found", len(elements)).Msg("htmldom find elements")
	return elements, nil
}

func (d *Document) query(q screenk.Query) ([]*html.Node, error) {
	switch q.By {
	case screenk.ByXPath:
		nodes, err := htmlquery.QueryAll(d.root, q.Selector)
		if err != nil {
			return nil, &screenk.InvalidQueryErr{Message: q.Selector + ": " + err.Error()}
		}
		return nodes, nil
	case screenk.ByCSSSelector:
		sel, err := cascadia.ParseGroup(q.Selector)
		if err != nil {
			return nil, &screenk.InvalidQueryErr{Message: q.Selector + ": " + err.Error()}
		}
		return cascadia.QueryAll(d.root, sel), nil
	}
	return nil, &screenk.InvalidQueryErr{Message: "unsupported strategy " + q.By.String()}
}

// Append parses fragment and appends the resulting nodes to the first
// element matching parentXPath.
func (d *Document) Append(parentXPath, fragment string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	parents, err := htmlquery.QueryAll(d.root, parentXPath)
	if err != nil {
		return &screenk.InvalidQueryErr{Message: parentXPath + ": " + err.Error()}
	}
	if len(parents) == 0 || parents[0].Type != html.ElementNode {
		return errors.Wrap(screenk.ErrNoSuchElement, parentXPath)
	}
	parent := parents[0]

	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent)
	if err != nil {
		return errors.Wrap(err, "parsing fragment")
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}

// Remove el from the document, el and its descendants become stale
func (d *Document) Remove(el *Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el.node.Parent != nil {
		el.node.Parent.RemoveChild(el.node)
	}
}

// SetValue changes the live value of a form control without touching its
// value attribute, as typing into the control would.
func (d *Document) SetValue(el *Element, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[el.node] = value
}

// SetAttribute adds or replaces an attribute in the markup
func (d *Document) SetAttribute(el *Element, name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	name = strings.ToLower(name)
	for i := range el.node.Attr {
		if el.node.Attr[i].Key == name {
			el.node.Attr[i].Val = value
			return
		}
	}
	el.node.Attr = append(el.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute from the markup, a no-op if el does not have it
func (d *Document) RemoveAttribute(el *Element, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	name = strings.ToLower(name)
	attrs := el.node.Attr[:0]
	for _, a := range el.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	el.node.Attr = attrs
}

// Render the whole document
func (d *Document) Render() (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var b strings.Builder
	if err := html.Render(&b, d.root); err != nil {
		return "", err
	}
	return b.String(), nil
}

// attached reports whether n is still reachable from the root. Caller holds mu.
func (d *Document) attached(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return true
		}
	}
	return false
}

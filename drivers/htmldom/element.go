package htmldom

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"gitlab.com/screener/screenk"
	"golang.org/x/net/html"
)

// Element of a Document
type Element struct {
	doc  *Document
	node *html.Node
}

// Attribute of the element. "value" reports the live value of input,
// textarea and select elements.
func (e *Element) Attribute(ctx context.Context, name string) (string, bool, error) {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()

	if !e.doc.attached(e.node) {
		return "", false, errors.Wrap(screenk.ErrStaleElement, "<"+e.node.Data+">")
	}

	name = strings.ToLower(name)
	if name == "value" {
		if v, ok := e.liveValue(); ok {
			return v, true, nil
		}
	}
	return attr(e.node, name)
}

// Tag name, lower case
func (e *Element) Tag() string {
	return e.node.Data
}

// Attached answers if the element is still part of its document
func (e *Element) Attached() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.doc.attached(e.node)
}

// Text content of the element and its descendants
func (e *Element) Text() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return goquery.NewDocumentFromNode(e.node).Text()
}

// String renders the element's outer HTML
func (e *Element) String() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	out, err := goquery.OuterHtml(goquery.NewDocumentFromNode(e.node).Selection)
	if err != nil {
		return "<" + e.node.Data + ">"
	}
	return out
}

// liveValue of form controls. Caller holds the document lock.
func (e *Element) liveValue() (string, bool) {
	if v, ok := e.doc.values[e.node]; ok {
		return v, true
	}

	switch e.node.Data {
	case "input":
		v, _, _ := attr(e.node, "value")
		return v, true
	case "textarea":
		return goquery.NewDocumentFromNode(e.node).Text(), true
	case "select":
		doc := goquery.NewDocumentFromNode(e.node)
		opt := doc.Find("option[selected]").First()
		if opt.Length() == 0 {
			opt = doc.Find("option").First()
		}
		if opt.Length() == 0 {
			return "", true
		}
		if v, ok := opt.Attr("value"); ok {
			return v, true
		}
		return strings.TrimSpace(opt.Text()), true
	}
	return "", false
}

func attr(n *html.Node, name string) (string, bool, error) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true, nil
		}
	}
	return "", false, nil
}

// Package rodpage adapts a go-rod page to screenk.Driver.
package rodpage

import (
	"context"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/screener/screenk"
)

// Page queried through rod. Queries never wait, rod's own element waiting
// is bypassed so the screen decides when to poll.
type Page struct {
	page    *rod.Page
	browser *rod.Browser // set by Open
}

// New driver over an open page
func New(page *rod.Page) *Page {
	return &Page{page: page}
}

// Open launches chrome, opens a stealth page and navigates to url.
func Open(ctx context.Context, url string, headless bool) (*Page, error) {
	u, err := launcher.New().Headless(headless).Launch()
	if err != nil {
		return nil, errors.Wrap(err, "launching chrome")
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, errors.Wrap(err, "connecting to chrome")
	}

	page, err := stealth.Page(b)
	if err != nil {
		b.Close()
		return nil, errors.Wrap(err, "creating page")
	}
	if err := page.Context(ctx).Navigate(url); err != nil {
		b.Close()
		return nil, errors.Wrapf(err, "navigating to %s", url)
	}
	if err := page.Context(ctx).WaitLoad(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("url", url).Msg("wait load failed")
	}
	log.Ctx(ctx).Info().Str("url", url).Msg("rod page loaded")
	return &Page{page: page, browser: b}, nil
}

// Rod page underneath
func (p *Page) Rod() *rod.Page {
	return p.page
}

// Close the browser if Open launched it
func (p *Page) Close() error {
	if p.browser != nil {
		return p.browser.Close()
	}
	return nil
}

// FindElements matching q in document order
func (p *Page) FindElements(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
	nq, err := q.Normalize()
	if err != nil {
		return nil, err
	}

	page := p.page.Context(ctx)
	var els rod.Elements
	switch nq.By {
	case screenk.ByCSSSelector:
		els, err = page.Elements(nq.Selector)
	case screenk.ByXPath:
		els, err = page.ElementsX(nq.Selector)
	}
	if err != nil {
		return nil, err
	}

	elements := make([]screenk.Element, len(els))
	for i, el := range els {
		elements[i] = &Element{el: el}
	}
	log.Ctx(ctx).Debug().Str("query", q.String()).Int("found", len(elements)).Msg("rod find elements")
	return elements, nil
}

var formControls = map[string]bool{"INPUT": true, "SELECT": true, "TEXTAREA": true}

// Element wraps a rod element
type Element struct {
	el *rod.Element
}

// Rod element underneath
func (e *Element) Rod() *rod.Element {
	return e.el
}

// Attribute reads "value" of form controls from the DOM property, everything
// else from the markup attribute.
func (e *Element) Attribute(ctx context.Context, name string) (string, bool, error) {
	el := e.el.Context(ctx)
	if strings.EqualFold(name, "value") {
		tag, err := el.Property("tagName")
		if err != nil {
			return "", false, screenk.StaleFromMessage(err)
		}
		if formControls[tag.Str()] {
			v, err := el.Property("value")
			if err != nil {
				return "", false, screenk.StaleFromMessage(err)
			}
			return v.Str(), true, nil
		}
	}

	v, err := el.Attribute(name)
	if err != nil {
		return "", false, screenk.StaleFromMessage(err)
	}
	if v == nil {
		return "", false, nil
	}
	return *v, true, nil
}

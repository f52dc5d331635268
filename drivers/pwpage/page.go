// Package pwpage adapts a playwright-go page to screenk.Driver.
package pwpage

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"
	"gitlab.com/screener/screenk"
)

const attributeScript = `(el, name) => {
	if (name === "value" && ["INPUT", "SELECT", "TEXTAREA"].includes(el.tagName)) {
		return String(el.value);
	}
	return el.getAttribute(name);
}`

// Page queried through playwright's css= and xpath= selector engines
type Page struct {
	page    playwright.Page
	browser playwright.Browser
	pw      *playwright.Playwright
}

// New driver over an open page
func New(page playwright.Page) *Page {
	return &Page{page: page}
}

// Open starts playwright, launches chromium and navigates to url. The
// playwright driver must already be installed.
func Open(ctx context.Context, url string, headless bool) (*Page, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, errors.Wrap(err, "starting playwright")
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, errors.Wrap(err, "launching chromium")
	}
	page, err := browser.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, errors.Wrap(err, "creating page")
	}
	if _, err := page.Goto(url); err != nil {
		browser.Close()
		pw.Stop()
		return nil, errors.Wrapf(err, "navigating to %s", url)
	}
	log.Ctx(ctx).Info().Str("url", url).Msg("playwright page loaded")
	return &Page{page: page, browser: browser, pw: pw}, nil
}

// Close the browser and playwright if Open started them
func (p *Page) Close() error {
	if p.browser != nil {
		if err := p.browser.Close(); err != nil {
			return err
		}
	}
	if p.pw != nil {
		return p.pw.Stop()
	}
	return nil
}

// FindElements matching q in document order
func (p *Page) FindElements(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
	nq, err := q.Normalize()
	if err != nil {
		return nil, err
	}

	selector := "css=" + nq.Selector
	if nq.By == screenk.ByXPath {
		selector = "xpath=" + nq.Selector
	}
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}

	elements := make([]screenk.Element, len(handles))
	for i, h := range handles {
		elements[i] = &Element{handle: h}
	}
	log.Ctx(ctx).Debug().Str("query", q.String()).Int("found", len(elements)).Msg("playwright find elements")
	return elements, nil
}

// Element wraps a playwright element handle
type Element struct {
	handle playwright.ElementHandle
}

// Attribute evaluated in the page; "value" is the live property.
func (e *Element) Attribute(ctx context.Context, name string) (string, bool, error) {
	v, err := e.handle.Evaluate(attributeScript, name)
	if err != nil {
		return "", false, screenk.StaleFromMessage(err)
	}
	if v == nil {
		return "", false, nil
	}
	if s, ok := v.(string); ok {
		return s, true, nil
	}
	return fmt.Sprint(v), true, nil
}

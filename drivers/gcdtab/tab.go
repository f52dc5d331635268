// Package gcdtab adapts a wirepair/gcd Chrome target to screenk.Driver.
package gcdtab

import (
	"context"
	"sync"
	"time"

	"github.com/gobuffalo/packr/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/wirepair/gcd"
	"github.com/wirepair/gcd/gcdapi"
	"gitlab.com/screener/screenk"
)

const objectGroup = "screener"

// revive:exported
var (
	ErrNavigationTimedOut = errors.New("navigation timed out")
	ErrNavigating         = errors.New("error in navigation")
	ErrTabClosing         = errors.New("closing")
)

// Tab is a chrome tab queried over the debugger protocol
type Tab struct {
	g                 *gcd.Gcd // set when we launched the process ourselves
	t                 *gcd.ChromeTarget
	scripts           *packr.Box
	doc               docCache
	loadCh            chan struct{}
	exitCh            chan struct{}
	closeOnce         sync.Once
	navigationTimeout time.Duration
}

// New tab adapter for an already open target
func New(target *gcd.ChromeTarget) *Tab {
	t := &Tab{
		t:                 target,
		scripts:           packr.New("gcdtab", "./js"),
		loadCh:            make(chan struct{}, 1),
		exitCh:            make(chan struct{}),
		navigationTimeout: 30 * time.Second,
	}
	t.subscribe()
	return t
}

// SetNavigationTimeout to wait for the load event, default is 30 seconds
func (t *Tab) SetNavigationTimeout(timeout time.Duration) {
	t.navigationTimeout = timeout
}

func (t *Tab) subscribe() {
	t.t.DOM.Enable()
	t.t.Page.Enable()

	t.t.Subscribe("DOM.documentUpdated", func(target *gcd.ChromeTarget, payload []byte) {
		t.doc.invalidate()
	})
	t.t.Subscribe("Page.loadEventFired", func(target *gcd.ChromeTarget, payload []byte) {
		select {
		case t.loadCh <- struct{}{}:
		default:
		}
	})
}

// Navigate to url and wait for the load event
func (t *Tab) Navigate(ctx context.Context, url string) error {
	select {
	case <-t.loadCh:
	default:
	}

	navParams := &gcdapi.PageNavigateParams{Url: url, TransitionType: "typed"}
	_, _, errText, err := t.t.Page.NavigateWithParams(navParams)
	if err != nil {
		return err
	}
	if errText != "" {
		return errors.Wrap(ErrNavigating, errText)
	}

	timer := time.NewTimer(t.navigationTimeout)
	defer timer.Stop()
	select {
	case <-timer.C:
		return ErrNavigationTimedOut
	case <-ctx.Done():
		return ctx.Err()
	case <-t.exitCh:
		return ErrTabClosing
	case <-t.loadCh:
	}
	t.doc.invalidate()
	log.Ctx(ctx).Info().Str("url", url).Msg("navigation complete")
	return nil
}

// Close the tab, and the chrome process if Launch started it
func (t *Tab) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.exitCh)
		if t.g != nil {
			err = t.g.ExitProcess()
		}
	})
	return err
}

// document returns the nodeID of the top document. DOM.getDocument
// invalidates every nodeID we handed out, so it is only called again after
// chrome told us the document changed.
func (t *Tab) document() (int, error) {
	return t.doc.get(func() (int, error) {
		doc, err := t.t.DOM.GetDocument(-1, true)
		if err != nil {
			return 0, err
		}
		return doc.NodeId, nil
	})
}

// FindElements runs CSS through DOM.querySelectorAll and XPath through
// DOM.performSearch, other strategies are normalized to one of the two.
func (t *Tab) FindElements(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
	nq, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	docNodeID, err := t.document()
	if err != nil {
		return nil, err
	}

	var nodeIDs []int
	switch nq.By {
	case screenk.ByCSSSelector:
		nodeIDs, err = t.t.DOM.QuerySelectorAll(docNodeID, nq.Selector)
	case screenk.ByXPath:
		nodeIDs, err = t.search(nq.Selector)
	}
	if err != nil {
		return nil, err
	}

	elements := make([]screenk.Element, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		if nodeID == 0 {
			continue
		}
		elements = append(elements, &Element{tab: t, nodeID: nodeID})
	}
	log.Ctx(ctx).Debug().Str("query", q.String()).Int("found", len(elements)).Msg("gcd find elements")
	return elements, nil
}

func (t *Tab) search(selector string) ([]int, error) {
	s := &gcdapi.DOMPerformSearchParams{Query: selector, IncludeUserAgentShadowDOM: false}
	searchID, count, err := t.t.DOM.PerformSearchWithParams(s)
	if err != nil {
		return nil, err
	}
	defer t.t.DOM.DiscardSearchResults(searchID)

	if count < 1 {
		return []int{}, nil
	}

	r := &gcdapi.DOMGetSearchResultsParams{SearchId: searchID, FromIndex: 0, ToIndex: count}
	return t.t.DOM.GetSearchResultsWithParams(r)
}

// Package screen retrieves elements through semantic locators with three
// disciplines: Get (strict, immediate), Query (lenient, immediate) and Find
// (poll until found or timed out), each in a singular and plural form.
package screen

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

// Screen is a facade over a driver. It holds no state between calls, every
// call re-resolves its locator against the live document.
type Screen struct {
	driver     screenk.Driver
	poller     screenk.Poller
	timeout    time.Duration
	interval   time.Duration
	exact      bool
	testIDAttr string
}

// New screen over driver. A nil cfg uses screenk.DefaultConfig().
func New(driver screenk.Driver, cfg *screenk.Config) *Screen {
	if cfg == nil {
		cfg = screenk.DefaultConfig()
	}
	return &Screen{
		driver:     driver,
		poller:     NewTickerPoller(),
		timeout:    cfg.TimeoutDuration(),
		interval:   cfg.PollDuration(),
		exact:      cfg.IsExact(),
		testIDAttr: cfg.TestID(),
	}
}

// Driver this screen queries
func (s *Screen) Driver() screenk.Driver {
	return s.driver
}

// SetPoller replaces the default ticker poller
func (s *Screen) SetPoller(p screenk.Poller) {
	s.poller = p
}

// SetTimeout for Find calls that don't pass their own, default is 5 seconds
func (s *Screen) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// SetPollInterval for Find calls that don't pass their own, default is 500 ms
func (s *Screen) SetPollInterval(interval time.Duration) {
	s.interval = interval
}

// Get exactly one element, without waiting.
func (s *Screen) Get(ctx context.Context, loc locator.Locator) (screenk.Element, error) {
	els, err := loc.Resolve(ctx, s.driver)
	if err != nil {
		return nil, err
	}
	return single(loc, els)
}

// GetAll elements, at least one, without waiting.
func (s *Screen) GetAll(ctx context.Context, loc locator.Locator) ([]screenk.Element, error) {
	els, err := loc.Resolve(ctx, s.driver)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, notFound(loc)
	}
	return els, nil
}

// Query returns nil if nothing matched, the element if one did and
// ErrMultipleSuchElements if more than one did.
func (s *Screen) Query(ctx context.Context, loc locator.Locator) (screenk.Element, error) {
	els, err := loc.Resolve(ctx, s.driver)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, nil
	}
	return single(loc, els)
}

// QueryAll returns every match, possibly none.
func (s *Screen) QueryAll(ctx context.Context, loc locator.Locator) ([]screenk.Element, error) {
	els, err := loc.Resolve(ctx, s.driver)
	if err != nil {
		return nil, err
	}
	if els == nil {
		els = make([]screenk.Element, 0)
	}
	return els, nil
}

// Find polls until loc matches, then requires that exactly one element
// matched on that poll.
func (s *Screen) Find(ctx context.Context, loc locator.Locator, opts ...Option) (screenk.Element, error) {
	els, err := s.poll(ctx, loc, s.options(opts))
	if err != nil {
		return nil, err
	}
	return single(loc, els)
}

// FindAll polls until loc matches and returns the matches of that poll.
func (s *Screen) FindAll(ctx context.Context, loc locator.Locator, opts ...Option) ([]screenk.Element, error) {
	return s.poll(ctx, loc, s.options(opts))
}

func (s *Screen) poll(ctx context.Context, loc locator.Locator, o *Options) ([]screenk.Element, error) {
	els, err := s.poller.Poll(ctx, func(ctx context.Context) ([]screenk.Element, error) {
		return loc.Resolve(ctx, s.driver)
	}, o.Timeout, o.PollInterval)

	if errors.Is(err, screenk.ErrTimedOut) {
		return nil, errors.Wrapf(screenk.ErrNoSuchElement, "%s not found after %s", loc, o.Timeout)
	}
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, notFound(loc)
	}
	return els, nil
}

func single(loc locator.Locator, els []screenk.Element) (screenk.Element, error) {
	switch len(els) {
	case 0:
		return nil, notFound(loc)
	case 1:
		return els[0], nil
	}
	return nil, errors.Wrapf(screenk.ErrMultipleSuchElements, "%s matched %d elements", loc, len(els))
}

func notFound(loc locator.Locator) error {
	return errors.Wrapf(screenk.ErrNoSuchElement, "%s", loc)
}

package screen

import (
	"time"

	"gitlab.com/screener/screenk/locator"
)

// Options of a single retrieval call
type Options struct {
	Exact        bool
	Raw          bool
	Timeout      time.Duration
	PollInterval time.Duration
}

// Option modifies Options
type Option func(o *Options)

// Exact equality (the default) or substring matching for semantic locators
func Exact(exact bool) Option {
	return func(o *Options) {
		o.Exact = exact
	}
}

// Inexact is Exact(false)
func Inexact() Option {
	return Exact(false)
}

// Raw selector interpolation, see locator.Raw
func Raw() Option {
	return func(o *Options) {
		o.Raw = true
	}
}

// Timeout for Find calls
func Timeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// PollInterval for Find calls
func PollInterval(interval time.Duration) Option {
	return func(o *Options) {
		o.PollInterval = interval
	}
}

func (s *Screen) options(opts []Option) *Options {
	o := &Options{
		Exact:        s.exact,
		Timeout:      s.timeout,
		PollInterval: s.interval,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (s *Screen) locatorOptions(o *Options) []locator.Option {
	lopts := []locator.Option{locator.Exact(o.Exact), locator.TestIDAttribute(s.testIDAttr)}
	if o.Raw {
		lopts = append(lopts, locator.Raw())
	}
	return lopts
}

// Locator of any kind built with the screen defaults and opts, for callers
// that pick the kind at runtime.
func (s *Screen) Locator(kind locator.Kind, selector string, opts ...Option) (locator.Locator, error) {
	return locator.New(kind, selector, s.locatorOptions(s.options(opts))...)
}

package screenk

import (
	"time"

	"github.com/pkg/errors"
)

// revive:exported
const (
	DefaultTimeout         = 5 * time.Second
	DefaultPollInterval    = 500 * time.Millisecond
	DefaultTestIDAttribute = "data-testid"
)

// Config for screener, shared by the library defaults and the cli
type Config struct {
	Timeout         string `toml:"timeout" yaml:"timeout"`                     // go duration, how long Find polls
	PollInterval    string `toml:"poll_interval" yaml:"poll_interval"`         // go duration between Find polls
	Exact           *bool  `toml:"exact" yaml:"exact"`                         // nil means exact
	TestIDAttribute string `toml:"test_id_attribute" yaml:"test_id_attribute"` // attribute used by test id locators
	Driver          string `toml:"driver" yaml:"driver"`                       // gcd, rod or playwright for live pages
	Headless        *bool  `toml:"headless" yaml:"headless"`
}

// DefaultConfig returns a config with every field set to its default
func DefaultConfig() *Config {
	exact, headless := true, true
	return &Config{
		Timeout:         DefaultTimeout.String(),
		PollInterval:    DefaultPollInterval.String(),
		Exact:           &exact,
		TestIDAttribute: DefaultTestIDAttribute,
		Driver:          "rod",
		Headless:        &headless,
	}
}

// TimeoutDuration parses Timeout, falling back to DefaultTimeout
func (c *Config) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, DefaultTimeout)
}

// PollDuration parses PollInterval, falling back to DefaultPollInterval
func (c *Config) PollDuration() time.Duration {
	return parseDuration(c.PollInterval, DefaultPollInterval)
}

// IsExact defaults to true when unset
func (c *Config) IsExact() bool {
	return c.Exact == nil || *c.Exact
}

// IsHeadless defaults to true when unset
func (c *Config) IsHeadless() bool {
	return c.Headless == nil || *c.Headless
}

// TestID attribute, falling back to data-testid
func (c *Config) TestID() string {
	if c.TestIDAttribute == "" {
		return DefaultTestIDAttribute
	}
	return c.TestIDAttribute
}

// Validate the duration fields
func (c *Config) Validate() error {
	for _, d := range []struct{ name, value string }{{"timeout", c.Timeout}, {"poll_interval", c.PollInterval}} {
		if d.value == "" {
			continue
		}
		v, err := time.ParseDuration(d.value)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s: %s", d.name, err)
		}
		if v < 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s must not be negative", d.name)
		}
	}
	return nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}
	return d
}

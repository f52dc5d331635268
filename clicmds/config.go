package clicmds

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/screener/screenk"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a .toml, .yaml or .yml config file. An empty path returns
// the defaults. Fields missing from the file keep their defaults.
func LoadConfig(path string) (*screenk.Config, error) {
	if path == "" {
		return screenk.DefaultConfig(), nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &screenk.Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, errors.Wrapf(screenk.ErrInvalidConfig, "%s: %s", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(screenk.ErrInvalidConfig, "%s: %s", path, err)
		}
	default:
		return nil, errors.Wrapf(screenk.ErrInvalidConfig, "%s: unknown config format", path)
	}

	if cfg.Driver == "" {
		cfg.Driver = screenk.DefaultConfig().Driver
	}
	return cfg, cfg.Validate()
}

// applyFlags overrides config values with the flags set on the command line
func applyFlags(ctx *cli.Context, cfg *screenk.Config) error {
	if ctx.IsSet("timeout") {
		cfg.Timeout = ctx.Duration("timeout").String()
	}
	if ctx.IsSet("poll") {
		cfg.PollInterval = ctx.Duration("poll").String()
	}
	if ctx.IsSet("exact") {
		exact := ctx.Bool("exact")
		cfg.Exact = &exact
	}
	if ctx.IsSet("headless") {
		headless := ctx.Bool("headless")
		cfg.Headless = &headless
	}
	if ctx.IsSet("driver") {
		cfg.Driver = ctx.String("driver")
	}
	if ctx.IsSet("testid-attr") {
		cfg.TestIDAttribute = ctx.String("testid-attr")
	}
	return cfg.Validate()
}

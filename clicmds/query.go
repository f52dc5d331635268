package clicmds

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/screener/drivers/gcdtab"
	"gitlab.com/screener/drivers/htmldom"
	"gitlab.com/screener/drivers/pwpage"
	"gitlab.com/screener/drivers/rodpage"
	"gitlab.com/screener/screen"
	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

var defaultAttrs = []string{"id", "name", "class", "role"}

func QueryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "file",
			Usage: "static html file to query",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "url to load in a browser and query",
		},
		&cli.StringFlag{
			Name:  "driver",
			Usage: "browser driver for --url: gcd, rod or playwright",
			Value: "rod",
		},
		&cli.BoolFlag{
			Name:  "headless",
			Usage: "run the browser headless",
			Value: true,
		},
		&cli.StringFlag{
			Name:  "by",
			Usage: "locator kind, see the kinds command",
			Value: "text",
		},
		&cli.BoolFlag{
			Name:  "exact",
			Usage: "match the whole value, false matches substrings",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "splice the selector into the xpath without quoting",
		},
		&cli.StringFlag{
			Name:  "discipline",
			Usage: "get, query or find",
			Value: "get",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "return every match instead of exactly one",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "how long find polls",
			Value: screenk.DefaultTimeout,
		},
		&cli.DurationFlag{
			Name:  "poll",
			Usage: "interval between find polls",
			Value: screenk.DefaultPollInterval,
		},
		&cli.StringFlag{
			Name:  "testid-attr",
			Usage: "attribute matched by test id locators",
			Value: screenk.DefaultTestIDAttribute,
		},
		&cli.StringSliceFlag{
			Name:  "attrs",
			Usage: "attributes to print for each element",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "config file (.toml, .yaml or .yml)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "debug logging",
		},
	}
}

// Query resolves one locator against a static file or a live page and
// prints the matches.
func Query(ctx *cli.Context) error {
	setupLogger(ctx.Bool("debug"))

	if ctx.NArg() != 1 {
		return errors.New("query takes exactly one SELECTOR argument")
	}
	selector := ctx.Args().First()

	cfg, err := LoadConfig(ctx.String("config"))
	if err != nil {
		return err
	}
	if err := applyFlags(ctx, cfg); err != nil {
		return err
	}

	kind, err := locator.ParseKind(ctx.String("by"))
	if err != nil {
		return err
	}

	qctx := log.Logger.WithContext(context.Background())
	driver, closeFn, err := openDriver(qctx, ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	scr := screen.New(driver, cfg)
	var opts []screen.Option
	if ctx.Bool("raw") {
		opts = append(opts, screen.Raw())
	}

	els, err := run(qctx, scr, kind, selector, ctx.String("discipline"), ctx.Bool("all"), opts)
	if err != nil {
		if screenk.IsNotFound(err) || screenk.IsMultiple(err) {
			return cli.Exit(err.Error(), 1)
		}
		return err
	}
	log.Debug().Int("found", len(els)).Str("by", kind.String()).Str("selector", selector).Msg("query done")
	return printElements(qctx, ctx.App.Writer, els, ctx.StringSlice("attrs"))
}

func openDriver(ctx context.Context, c *cli.Context, cfg *screenk.Config) (screenk.Driver, func(), error) {
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		doc, err := htmldom.Parse(f)
		if err != nil {
			return nil, nil, err
		}
		return doc, func() {}, nil
	}

	url := c.String("url")
	if url == "" {
		return nil, nil, errors.New("one of --file or --url is required")
	}

	switch cfg.Driver {
	case "gcd":
		tab, err := gcdtab.Launch(ctx, cfg.IsHeadless())
		if err != nil {
			return nil, nil, err
		}
		if err := tab.Navigate(ctx, url); err != nil {
			tab.Close()
			return nil, nil, err
		}
		return tab, closer(tab.Close), nil
	case "rod":
		page, err := rodpage.Open(ctx, url, cfg.IsHeadless())
		if err != nil {
			return nil, nil, err
		}
		return page, closer(page.Close), nil
	case "playwright":
		page, err := pwpage.Open(ctx, url, cfg.IsHeadless())
		if err != nil {
			return nil, nil, err
		}
		return page, closer(page.Close), nil
	}
	return nil, nil, errors.Wrapf(screenk.ErrInvalidConfig, "unknown driver %q", cfg.Driver)
}

func closer(fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			log.Warn().Err(err).Msg("failed to close browser")
		}
	}
}

func run(ctx context.Context, scr *screen.Screen, kind locator.Kind, selector, discipline string, all bool, opts []screen.Option) ([]screenk.Element, error) {
	if kind == locator.KindLabelText {
		return runLabel(ctx, scr, selector, discipline, all, opts)
	}

	loc, err := scr.Locator(kind, selector, opts...)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(discipline) {
	case "get":
		if all {
			return scr.GetAll(ctx, loc)
		}
		return one(scr.Get(ctx, loc))
	case "query":
		if all {
			return scr.QueryAll(ctx, loc)
		}
		return one(scr.Query(ctx, loc))
	case "find":
		if all {
			return scr.FindAll(ctx, loc, opts...)
		}
		return one(scr.Find(ctx, loc, opts...))
	}
	return nil, errors.Errorf("unknown discipline %q", discipline)
}

func runLabel(ctx context.Context, scr *screen.Screen, text, discipline string, all bool, opts []screen.Option) ([]screenk.Element, error) {
	switch strings.ToLower(discipline) {
	case "get":
		if all {
			return scr.GetAllByLabelText(ctx, text, opts...)
		}
		return one(scr.GetByLabelText(ctx, text, opts...))
	case "query":
		if all {
			return scr.QueryAllByLabelText(ctx, text, opts...)
		}
		return one(scr.QueryByLabelText(ctx, text, opts...))
	case "find":
		if all {
			return scr.FindAllByLabelText(ctx, text, opts...)
		}
		return one(scr.FindByLabelText(ctx, text, opts...))
	}
	return nil, errors.Errorf("unknown discipline %q", discipline)
}

func one(el screenk.Element, err error) ([]screenk.Element, error) {
	if err != nil || el == nil {
		return nil, err
	}
	return []screenk.Element{el}, nil
}

func printElements(ctx context.Context, w io.Writer, els []screenk.Element, attrs []string) error {
	for i, el := range els {
		if s, ok := el.(fmt.Stringer); ok && len(attrs) == 0 {
			fmt.Fprintf(w, "%d\t%s\n", i, s)
			continue
		}

		names := attrs
		if len(names) == 0 {
			names = defaultAttrs
		}
		fields := make([]string, 0, len(names))
		for _, name := range names {
			v, ok, err := el.Attribute(ctx, name)
			if err != nil {
				if screenk.IsStale(err) {
					break
				}
				return err
			}
			if ok {
				fields = append(fields, name+"="+v)
			}
		}
		fmt.Fprintf(w, "%d\t%s\n", i, strings.Join(fields, " "))
	}
	return nil
}

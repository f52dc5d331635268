package clicmds

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

// Kinds prints the locator kinds accepted by --by and the structural
// strategies drivers execute.
func Kinds(ctx *cli.Context) error {
	w := ctx.App.Writer
	fmt.Fprintln(w, "locator kinds:")
	for _, k := range locator.Kinds() {
		kind := "semantic"
		if k.Structural() {
			kind = "structural"
		}
		fmt.Fprintf(w, "  %-18s %s\n", k, kind)
	}
	fmt.Fprintln(w, "strategies:")
	for _, by := range screenk.AllBy() {
		fmt.Fprintf(w, "  %s\n", by)
	}
	return nil
}

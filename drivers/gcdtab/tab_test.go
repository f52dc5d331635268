package gcdtab_test

import (
	"context"
	"testing"

	"gitlab.com/screener/drivers/driverstest"
	"gitlab.com/screener/drivers/gcdtab"
	"gitlab.com/screener/mock"
)

func TestTabConformance(t *testing.T) {
	driverstest.RequireBrowser(t)
	url := driverstest.Serve(t)

	ctx := mock.Context(context.Background())
	tab, err := gcdtab.Launch(ctx, true)
	if err != nil {
		t.Fatalf("error launching chrome: %s\n", err)
	}
	defer tab.Close()

	if err := tab.Navigate(ctx, url); err != nil {
		t.Fatalf("error navigating: %s\n", err)
	}
	driverstest.Conformance(t, tab, true)
}

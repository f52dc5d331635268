package htmldom_test

import (
	"testing"

	"gitlab.com/screener/drivers/driverstest"
	"gitlab.com/screener/drivers/htmldom"
)

func TestConformance(t *testing.T) {
	doc, err := htmldom.ParseString(driverstest.Page)
	if err != nil {
		t.Fatalf("error parsing page: %s\n", err)
	}
	driverstest.Conformance(t, doc, false)
}

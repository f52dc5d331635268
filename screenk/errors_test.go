package screenk_test

import (
	"testing"

	"github.com/pkg/errors"
	"gitlab.com/screener/screenk"
)

func TestStaleFromMessage(t *testing.T) {
	if screenk.StaleFromMessage(nil) != nil {
		t.Fatalf("nil error should stay nil\n")
	}

	stale := errors.New("{\"code\":-32000,\"message\":\"Could not find node with given id\"}")
	if !screenk.IsStale(screenk.StaleFromMessage(stale)) {
		t.Fatalf("expected stale error\n")
	}

	other := errors.New("websocket closed")
	if got := screenk.StaleFromMessage(other); got != other {
		t.Fatalf("expected error unchanged, got %v\n", got)
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := errors.Wrap(screenk.ErrNoSuchElement, `text "Missing"`)
	if !screenk.IsNotFound(notFound) || screenk.IsMultiple(notFound) {
		t.Fatalf("expected not found only: %v\n", notFound)
	}
	multiple := errors.Wrapf(screenk.ErrMultipleSuchElements, "%s matched %d elements", "x", 2)
	if !screenk.IsMultiple(multiple) || screenk.IsNotFound(multiple) {
		t.Fatalf("expected multiple only: %v\n", multiple)
	}
}

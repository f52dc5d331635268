package screenk

import (
	"strings"

	"github.com/pkg/errors"
)

// revive:exported
var (
	ErrNoSuchElement        = errors.New("no such element")
	ErrMultipleSuchElements = errors.New("multiple such elements")
	ErrStaleElement         = errors.New("stale element reference")
	ErrTimedOut             = errors.New("timed out waiting for elements")
	ErrInvalidConfig        = errors.New("invalid config")
)

// InvalidQueryErr when a structural query can not be built or executed
type InvalidQueryErr struct {
	Message string
}

func (e *InvalidQueryErr) Error() string {
	return "invalid query: " + e.Message
}

// IsNotFound answers if err means zero elements matched
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoSuchElement)
}

// IsMultiple answers if err means too many elements matched
func IsMultiple(err error) bool {
	return errors.Is(err, ErrMultipleSuchElements)
}

// IsStale answers if err means the element was detached from the document.
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleElement)
}

var staleMessages = []string{
	"could not find node with given id",
	"no node with given id",
	"node with given id does not belong to the document",
	"cannot find context with specified id",
	"object reference chain is too long",
	"element is not attached to the dom",
	"stale element",
}

// StaleFromMessage wraps err with ErrStaleElement when a browser protocol
// error text says the node is gone. Other errors are returned unchanged.
func StaleFromMessage(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, s := range staleMessages {
		if strings.Contains(msg, s) {
			return errors.Wrap(ErrStaleElement, err.Error())
		}
	}
	return err
}

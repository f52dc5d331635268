package screenk

import (
	"fmt"
	"strings"
)

// By is the strategy tag of a structural query
type By int8

// revive:disable:var-naming
const (
	ByClassName By = iota + 1
	ByCSSSelector
	ByID
	ByLinkText
	ByPartialLinkText
	ByTagName
	ByXPath
	ByName
)

var byNames = map[By]string{
	ByClassName:       "class name",
	ByCSSSelector:     "css selector",
	ByID:              "id",
	ByLinkText:        "link text",
	ByPartialLinkText: "partial link text",
	ByTagName:         "tag name",
	ByXPath:           "xpath",
	ByName:            "name",
}

// AllBy returns every strategy in declaration order
func AllBy() []By {
	return []By{ByClassName, ByCSSSelector, ByID, ByLinkText, ByPartialLinkText, ByTagName, ByXPath, ByName}
}

func (b By) String() string {
	if s, ok := byNames[b]; ok {
		return s
	}
	return fmt.Sprintf("By(%d)", int8(b))
}

// Valid reports whether b is one of the known strategies
func (b By) Valid() bool {
	_, ok := byNames[b]
	return ok
}

// ParseBy accepts the WebDriver strategy names ("css selector", "xpath"...),
// also with dashes or underscores instead of spaces.
func ParseBy(name string) (By, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", " ", "_", " ").Replace(n)
	switch n {
	case "css":
		return ByCSSSelector, nil
	case "class":
		return ByClassName, nil
	case "tag":
		return ByTagName, nil
	}
	for b, s := range byNames {
		if s == n {
			return b, nil
		}
	}
	return 0, &InvalidQueryErr{Message: fmt.Sprintf("unknown strategy %q", name)}
}

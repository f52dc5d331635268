package screenk

import (
	"fmt"
	"strings"
)

// Query is a structural query, the unit of work sent to a Driver
type Query struct {
	By       By
	Selector string
}

// NewQuery to send to a driver
func NewQuery(by By, selector string) Query {
	return Query{By: by, Selector: selector}
}

// XPath query
func XPath(selector string) Query {
	return Query{By: ByXPath, Selector: selector}
}

// CSS query
func CSS(selector string) Query {
	return Query{By: ByCSSSelector, Selector: selector}
}

func (q Query) String() string {
	return fmt.Sprintf("%s=%s", q.By, q.Selector)
}

// Normalize rewrites the query into either a CSS selector or an XPath
// expression, for engines that only understand those two. CSS and XPath
// queries are returned unchanged.
func (q Query) Normalize() (Query, error) {
	switch q.By {
	case ByCSSSelector, ByXPath:
		return q, nil
	case ByID:
		return CSS("[id=" + CSSString(q.Selector) + "]"), nil
	case ByName:
		return CSS("[name=" + CSSString(q.Selector) + "]"), nil
	case ByTagName:
		if q.Selector == "" || strings.ContainsAny(q.Selector, " \t\n[]#.>+~,:") {
			return Query{}, &InvalidQueryErr{Message: fmt.Sprintf("invalid tag name %q", q.Selector)}
		}
		return CSS(q.Selector), nil
	case ByClassName:
		if q.Selector == "" || strings.ContainsAny(q.Selector, " \t\n") {
			return Query{}, &InvalidQueryErr{Message: fmt.Sprintf("compound class names not permitted: %q", q.Selector)}
		}
		return XPath("//*[contains(concat(' ', normalize-space(@class), ' '), " + XPathLiteral(" "+q.Selector+" ") + ")]"), nil
	case ByLinkText:
		return XPath("//a[normalize-space(.) = " + XPathLiteral(strings.TrimSpace(q.Selector)) + "]"), nil
	case ByPartialLinkText:
		return XPath("//a[contains(normalize-space(.), " + XPathLiteral(q.Selector) + ")]"), nil
	}
	return Query{}, &InvalidQueryErr{Message: "unknown strategy " + q.By.String()}
}

// XPathLiteral quotes s as an XPath 1.0 string literal. XPath has no escape
// sequences, so a value holding both quote kinds is built with concat().
func XPathLiteral(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, `'`) {
		return `'` + s + `'`
	}
	parts := strings.Split(s, `"`)
	args := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			args = append(args, `'"'`)
		}
		if p != "" {
			args = append(args, `"`+p+`"`)
		}
	}
	return "concat(" + strings.Join(args, ", ") + ")"
}

// CSSString quotes s as a single quoted CSS string
func CSSString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\a `)
	return "'" + r.Replace(s) + "'"
}

// Package assert provides immutable, chainable assertion builders over the
// query package. Each builder is a value: chaining methods like Not,
// TextContent, Count, or Nth return a modified copy, never mutate the
// receiver, so a builder can be declared once and reused across tests.
//
//	submit := assert.ByRole{Role: "button", Name: "Submit"}
//	if err := submit.Check(form); err != nil { t.Fatal(err) }
//	if err := submit.Not().Check(emptyForm); err != nil { t.Fatal(err) }
package assert

import (
	"errors"
	"fmt"

	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/query"
)

// renderLimit bounds the container rendering embedded in failure messages.
const renderLimit = 300

// Failure is the error returned by a builder's Check call. Err holds the
// underlying query error when the failure originated there.
type Failure struct {
	Msg string
	Err error
}

func (f *Failure) Error() string { return f.Msg }
func (f *Failure) Unwrap() error { return f.Err }

// formatQueryFailure combines the original error, the query criteria, and a
// truncated rendering of the searched container.
func formatQueryFailure(err error, container dom.Node, desc string) string {
	rendered := dom.Render(container)
	if len(rendered) > renderLimit {
		rendered = rendered[:renderLimit] + "..."
	}
	return fmt.Sprintf("%s\n\nQuery: %s\n\nSearched in:\n%s", err, desc, rendered)
}

// checks holds the refinements shared by every builder. The zero value
// performs no extra checks.
type checks struct {
	negate    bool
	text      *string
	attrName  string
	attrValue *string
}

func (c checks) withText(expected string) checks {
	c.text = &expected
	return c
}

func (c checks) withAttribute(name string, value []string) checks {
	c.attrName = name
	c.attrValue = nil
	if len(value) > 0 {
		v := value[0]
		c.attrValue = &v
	}
	return c
}

// element applies the text and attribute checks to one element.
func (c checks) element(el *dom.Element, desc string) error {
	if c.text != nil {
		actual := dom.TextContent(el)
		if actual != *c.text {
			return &Failure{Msg: fmt.Sprintf("expected text: %q but got: %q\n\nQuery: %s", *c.text, actual, desc)}
		}
	}
	if c.attrName != "" {
		actual, ok := el.Attr(c.attrName)
		if !ok {
			return &Failure{Msg: fmt.Sprintf("expected attribute %q not found\n\nQuery: %s", c.attrName, desc)}
		}
		if c.attrValue != nil && actual != *c.attrValue {
			return &Failure{Msg: fmt.Sprintf("expected attribute %q=%q but got %q\n\nQuery: %s",
				c.attrName, *c.attrValue, actual, desc)}
		}
	}
	return nil
}

// single evaluates a required-single query outcome. Negation turns NotFound
// into success and presence into failure; MultipleFound stays a failure
// either way, since negation means "no match at all".
func (c checks) single(el *dom.Element, err error, container dom.Node, desc string) error {
	if err != nil {
		var nf *query.NotFoundError
		if c.negate && errors.As(err, &nf) {
			return nil
		}
		return &Failure{Msg: formatQueryFailure(err, container, desc), Err: err}
	}
	if c.negate {
		return &Failure{Msg: fmt.Sprintf("expected element NOT to exist but found: %s\n\nQuery: %s", dom.Render(el), desc)}
	}
	return c.element(el, desc)
}

// listChecks extends checks with the count and nth refinements of the
// list-oriented builders.
type listChecks struct {
	checks
	count *int
	nth   *int
}

func (c listChecks) withCount(expected int) listChecks {
	c.count = &expected
	return c
}

func (c listChecks) withNth(index int) listChecks {
	c.nth = &index
	return c
}

// list evaluates a required-list query outcome: negation short-circuit,
// count check, then bounds-checked nth selection with the per-element
// checks applied to the selected element.
func (c listChecks) list(elements []*dom.Element, err error, container dom.Node, desc string) error {
	if err != nil {
		var nf *query.NotFoundError
		if c.negate && errors.As(err, &nf) {
			return nil
		}
		return &Failure{Msg: formatQueryFailure(err, container, desc), Err: err}
	}
	if c.negate {
		return &Failure{Msg: fmt.Sprintf("expected elements NOT to exist but found %d\n\nQuery: %s", len(elements), desc)}
	}
	if c.count != nil && len(elements) != *c.count {
		return &Failure{Msg: fmt.Sprintf("expected count: %d but found: %d elements\n\nQuery: %s",
			*c.count, len(elements), desc)}
	}
	if c.nth != nil {
		if *c.nth < 0 || *c.nth >= len(elements) {
			return &Failure{Msg: fmt.Sprintf("index %d out of bounds, found %d elements\n\nQuery: %s",
				*c.nth, len(elements), desc)}
		}
		return c.element(elements[*c.nth], fmt.Sprintf("%s, nth=%d", desc, *c.nth))
	}
	return nil
}

package query

import (
	"fmt"

	"github.com/mj1618/ariatest/dom"
)

// DefaultTestIDAttribute is the attribute consulted by test-id queries when
// no override is given.
const DefaultTestIDAttribute = "data-testid"

// TestIDOptions configure which attribute test-id queries match against.
type TestIDOptions struct {
	Attribute string
}

func (o TestIDOptions) attribute() string {
	if o.Attribute == "" {
		return DefaultTestIDAttribute
	}
	return o.Attribute
}

// QueryAllByTestID returns all elements whose test-id attribute exactly
// equals testID, in document order.
func (e *Engine) QueryAllByTestID(container dom.Node, testID string, opts TestIDOptions) []*dom.Element {
	return allByAttribute(container, opts.attribute(), testID, 0)
}

// QueryByTestID returns the single matching element, nil when none match,
// and a MultipleFoundError when more than one element matches.
func (e *Engine) QueryByTestID(container dom.Node, testID string, opts TestIDOptions) (*dom.Element, error) {
	elements := allByAttribute(container, opts.attribute(), testID, 2)
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with %s: %s", opts.attribute(), testID),
			Count: len(elements),
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return elements[0], nil
}

// GetByTestID returns the single matching element or a
// NotFoundError/MultipleFoundError.
func (e *Engine) GetByTestID(container dom.Node, testID string, opts TestIDOptions) (*dom.Element, error) {
	elements := allByAttribute(container, opts.attribute(), testID, 2)
	if len(elements) == 0 {
		return nil, &NotFoundError{
			Msg:        fmt.Sprintf("unable to find element with %s: %s", opts.attribute(), testID),
			Suggestion: "check that the test ID is correct and the element exists",
		}
	}
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with %s: %s", opts.attribute(), testID),
			Count: len(elements),
		}
	}
	return elements[0], nil
}

// GetAllByTestID returns all matching elements, failing with NotFoundError
// when there are none.
func (e *Engine) GetAllByTestID(container dom.Node, testID string, opts TestIDOptions) ([]*dom.Element, error) {
	elements := allByAttribute(container, opts.attribute(), testID, 0)
	if len(elements) == 0 {
		return nil, &NotFoundError{
			Msg:        fmt.Sprintf("unable to find elements with %s: %s", opts.attribute(), testID),
			Suggestion: "check that the test ID is correct and elements exist",
		}
	}
	return elements, nil
}

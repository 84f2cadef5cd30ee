package query

import (
	"fmt"

	"github.com/mj1618/ariatest/dom"
)

// QueryAllByID returns all elements whose id attribute exactly equals id.
// Well-formed documents have at most one, but duplicates do occur in the
// wild and are reported rather than hidden.
func (e *Engine) QueryAllByID(container dom.Node, id string) []*dom.Element {
	return allByAttribute(container, "id", id, 0)
}

// QueryByID returns the single matching element, nil when none match, and a
// MultipleFoundError when the id is duplicated.
func (e *Engine) QueryByID(container dom.Node, id string) (*dom.Element, error) {
	elements := allByAttribute(container, "id", id, 2)
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with id: %s", id),
			Count: len(elements),
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return elements[0], nil
}

// GetByID returns the single matching element or a
// NotFoundError/MultipleFoundError.
func (e *Engine) GetByID(container dom.Node, id string) (*dom.Element, error) {
	elements := allByAttribute(container, "id", id, 2)
	if len(elements) == 0 {
		return nil, &NotFoundError{
			Msg:        fmt.Sprintf("unable to find element with id: %s", id),
			Suggestion: "check that the id is correct and the element exists",
		}
	}
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with id: %s", id),
			Count: len(elements),
		}
	}
	return elements[0], nil
}

// GetAllByID returns all matching elements, failing with NotFoundError when
// there are none.
func (e *Engine) GetAllByID(container dom.Node, id string) ([]*dom.Element, error) {
	elements := allByAttribute(container, "id", id, 0)
	if len(elements) == 0 {
		return nil, &NotFoundError{
			Msg:        fmt.Sprintf("unable to find elements with id: %s", id),
			Suggestion: "check that the id is correct and elements exist",
		}
	}
	return elements, nil
}

package query

import (
	"fmt"

	"github.com/mj1618/ariatest/dom"
)

// allByClass matches by token equality against the space-split class
// attribute, never by substring of the raw value.
func (e *Engine) allByClass(container dom.Node, class string, limit int) []*dom.Element {
	var results []*dom.Element
	for _, el := range e.allElements(container, true, 0) {
		if el.HasClassToken(class) {
			results = append(results, el)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
	}
	return results
}

// QueryAllByClass returns all elements carrying the given CSS class token,
// in document order.
func (e *Engine) QueryAllByClass(container dom.Node, class string) []*dom.Element {
	return e.allByClass(container, class, 0)
}

// QueryByClass returns the single matching element, nil when none match,
// and a MultipleFoundError when more than one element matches.
func (e *Engine) QueryByClass(container dom.Node, class string) (*dom.Element, error) {
	elements := e.allByClass(container, class, 2)
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with class: %s", class),
			Count: len(elements),
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return elements[0], nil
}

// GetByClass returns the single matching element or a
// NotFoundError/MultipleFoundError.
func (e *Engine) GetByClass(container dom.Node, class string) (*dom.Element, error) {
	elements := e.allByClass(container, class, 2)
	if len(elements) == 0 {
		return nil, &NotFoundError{
			Msg:        fmt.Sprintf("unable to find element with class: %s", class),
			Suggestion: "ensure the class exists on a rendered element",
		}
	}
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with class: %s", class),
			Count: len(elements),
		}
	}
	return elements[0], nil
}

// GetAllByClass returns all matching elements, failing with NotFoundError
// when there are none.
func (e *Engine) GetAllByClass(container dom.Node, class string) ([]*dom.Element, error) {
	elements := e.allByClass(container, class, 0)
	if len(elements) == 0 {
		return nil, &NotFoundError{
			Msg:        fmt.Sprintf("unable to find elements with class: %s", class),
			Suggestion: "ensure at least one element has the specified class",
		}
	}
	return elements, nil
}

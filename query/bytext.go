package query

import (
	"fmt"
	"strings"

	"github.com/mj1618/ariatest/dom"
)

func (e *Engine) allByText(container dom.Node, text string, limit int) []*dom.Element {
	var results []*dom.Element
	for _, el := range e.allElements(container, true, 0) {
		if strings.Contains(dom.TextContent(el), text) {
			results = append(results, el)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
	}
	return results
}

// QueryAllByText returns all elements whose text content contains text as a
// case-sensitive substring, in document order.
func (e *Engine) QueryAllByText(container dom.Node, text string) []*dom.Element {
	return e.allByText(container, text, 0)
}

// QueryByText returns the single matching element, nil when none match, and
// a MultipleFoundError when more than one element matches.
func (e *Engine) QueryByText(container dom.Node, text string) (*dom.Element, error) {
	elements := e.allByText(container, text, 2)
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with text: %s", text),
			Count: len(elements),
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return elements[0], nil
}

// GetByText returns the single matching element or a
// NotFoundError/MultipleFoundError.
func (e *Engine) GetByText(container dom.Node, text string) (*dom.Element, error) {
	elements := e.allByText(container, text, 2)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find element with text: %s", text)}
	}
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with text: %s", text),
			Count: len(elements),
		}
	}
	return elements[0], nil
}

// GetAllByText returns all matching elements, failing with NotFoundError
// when there are none.
func (e *Engine) GetAllByText(container dom.Node, text string) ([]*dom.Element, error) {
	elements := e.allByText(container, text, 0)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find elements with text: %s", text)}
	}
	return elements, nil
}

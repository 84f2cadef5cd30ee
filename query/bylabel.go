package query

import (
	"fmt"
	"strings"

	"github.com/mj1618/ariatest/dom"
)

// labelControlTags are the form-control tags matched by the nested-label
// strategy.
var labelControlTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"select":   true,
	"button":   true,
}

// allByLabelText runs the label strategies in order: aria-label matches,
// then <label for> targets, then controls nested inside matching labels,
// then aria-labelledby referencers. All matching is case-sensitive
// substring; duplicates are removed by identity, first-seen order kept.
//
// firstOnly short-circuits after the aria-label strategy when it already
// produced results. This can miss a label-for or nested match that would
// otherwise have made the result ambiguous; the behavior is observable and
// deliberately kept.
func (e *Engine) allByLabelText(container dom.Node, text string, firstOnly bool) []*dom.Element {
	elements := e.allElements(container, true, 0)
	var results []*dom.Element

	for _, el := range elements {
		if label, ok := el.Attr("aria-label"); ok && label != "" && strings.Contains(label, text) {
			results = append(results, el)
		}
	}
	if firstOnly && len(results) > 0 {
		return dedupeByIdentity(results)
	}

	for _, label := range elements {
		if !strings.EqualFold(label.TagName, "label") {
			continue
		}
		if !strings.Contains(dom.TextContent(label), text) {
			continue
		}
		if forID, ok := label.Attr("for"); ok && forID != "" {
			for _, el := range elements {
				if id, ok := el.Attr("id"); ok && id == forID {
					results = append(results, el)
				}
			}
		}
		results = append(results, traverse(label, func(el *dom.Element) bool {
			return labelControlTags[strings.ToLower(el.TagName)]
		}, true, 0)...)
	}

	for _, el := range elements {
		refs, ok := el.Attr("aria-labelledby")
		if !ok || refs == "" {
			continue
		}
		for _, labelID := range strings.Fields(refs) {
			for _, candidate := range elements {
				if id, ok := candidate.Attr("id"); ok && id == labelID {
					if strings.Contains(dom.TextContent(candidate), text) {
						results = append(results, el)
						break
					}
				}
			}
		}
	}

	return dedupeByIdentity(results)
}

func dedupeByIdentity(elements []*dom.Element) []*dom.Element {
	seen := make(map[*dom.Element]bool, len(elements))
	var out []*dom.Element
	for _, el := range elements {
		if !seen[el] {
			seen[el] = true
			out = append(out, el)
		}
	}
	return out
}

// QueryAllByLabelText returns all elements associated with a label
// containing text, via aria-label, <label for>, label nesting, or
// aria-labelledby.
func (e *Engine) QueryAllByLabelText(container dom.Node, text string) []*dom.Element {
	return e.allByLabelText(container, text, false)
}

// QueryByLabelText returns the single matching element, nil when none
// match, and a MultipleFoundError when more than one element matches.
//
// It uses the first-match search, which stops after the aria-label strategy
// when that strategy alone produced results (see allByLabelText).
func (e *Engine) QueryByLabelText(container dom.Node, text string) (*dom.Element, error) {
	elements := e.allByLabelText(container, text, true)
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with label text: %s", text),
			Count: len(elements),
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return elements[0], nil
}

// GetByLabelText returns the single matching element or a
// NotFoundError/MultipleFoundError.
func (e *Engine) GetByLabelText(container dom.Node, text string) (*dom.Element, error) {
	elements := e.allByLabelText(container, text, false)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find element with label text: %s", text)}
	}
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with label text: %s", text),
			Count: len(elements),
		}
	}
	return elements[0], nil
}

// GetAllByLabelText returns all matching elements, failing with
// NotFoundError when there are none.
func (e *Engine) GetAllByLabelText(container dom.Node, text string) ([]*dom.Element, error) {
	elements := e.allByLabelText(container, text, false)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find elements with label text: %s", text)}
	}
	return elements, nil
}

package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/ariatest/dom"
)

// InClassKey is the reserved key in TagOptions.Attrs meaning "value appears
// as a substring anywhere in the raw class attribute string" (substring, not
// token).
const InClassKey = "in_class"

// TagOptions refine a tag-name query. Every entry in Attrs must exact-match
// an attribute, except the reserved InClassKey.
type TagOptions struct {
	Attrs map[string]string
}

func (o TagOptions) describe(tag string) string {
	desc := fmt.Sprintf("tag=%q", tag)
	if len(o.Attrs) == 0 {
		return desc
	}
	keys := make([]string, 0, len(o.Attrs))
	for k := range o.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var pairs []string
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%q", k, o.Attrs[k]))
	}
	return desc + ", attrs={" + strings.Join(pairs, ", ") + "}"
}

func (o TagOptions) matches(el *dom.Element) bool {
	for name, want := range o.Attrs {
		if name == InClassKey {
			if !strings.Contains(el.AttrOr("class", ""), want) {
				return false
			}
			continue
		}
		v, ok := el.Attr(name)
		if !ok || v != want {
			return false
		}
	}
	return true
}

func allByTagName(container dom.Node, tag string, opts TagOptions, limit int) []*dom.Element {
	return traverse(container, func(el *dom.Element) bool {
		return strings.EqualFold(el.TagName, tag) && opts.matches(el)
	}, true, limit)
}

// QueryAllByTagName returns all elements with the given tag name
// (case-insensitive), optionally filtered by attributes, in document order.
func (e *Engine) QueryAllByTagName(container dom.Node, tag string, opts TagOptions) []*dom.Element {
	return allByTagName(container, tag, opts, 0)
}

// QueryByTagName returns the single matching element, nil when none match,
// and a MultipleFoundError when more than one element matches.
func (e *Engine) QueryByTagName(container dom.Node, tag string, opts TagOptions) (*dom.Element, error) {
	elements := allByTagName(container, tag, opts, 2)
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with %s", opts.describe(tag)),
			Count: len(elements),
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return elements[0], nil
}

// GetByTagName returns the single matching element or a
// NotFoundError/MultipleFoundError.
func (e *Engine) GetByTagName(container dom.Node, tag string, opts TagOptions) (*dom.Element, error) {
	elements := allByTagName(container, tag, opts, 2)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find element with %s", opts.describe(tag))}
	}
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with %s", opts.describe(tag)),
			Count: len(elements),
		}
	}
	return elements[0], nil
}

// GetAllByTagName returns all matching elements, failing with NotFoundError
// when there are none.
func (e *Engine) GetAllByTagName(container dom.Node, tag string, opts TagOptions) ([]*dom.Element, error) {
	elements := allByTagName(container, tag, opts, 0)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find elements with %s", opts.describe(tag))}
	}
	return elements, nil
}

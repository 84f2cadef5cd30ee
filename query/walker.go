package query

import "github.com/mj1618/ariatest/dom"

// traverse collects elements under container in document order (depth-first,
// pre-order, children left-to-right). Fragment and all non-element nodes are
// transparent: traversed through, never yielded.
//
// skipRoot excludes the container itself from results when it is an Element;
// its descendants are still visited. maxResults > 0 stops traversal as soon
// as that many matches are collected.
//
// The walk uses an explicit stack rather than recursion so that tree depth
// cannot exhaust the goroutine stack. Children are pushed in reverse so that
// popping from the end reproduces document order.
func traverse(container dom.Node, pred func(*dom.Element) bool, skipRoot bool, maxResults int) []*dom.Element {
	type frame struct {
		node   dom.Node
		isRoot bool
	}

	var results []*dom.Element
	stack := []frame{{container, true}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := f.node.(type) {
		case *dom.Element:
			if !(skipRoot && f.isRoot) && (pred == nil || pred(n)) {
				results = append(results, n)
				if maxResults > 0 && len(results) >= maxResults {
					return results
				}
			}
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{n.Children[i], false})
			}
		case *dom.Fragment:
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{n.Children[i], false})
			}
		}
	}
	return results
}

// allByAttribute returns elements whose named attribute exactly equals
// value, excluding the container itself. Predicate traversals are not
// cached; they are bounded by limit instead.
func allByAttribute(container dom.Node, name, value string, limit int) []*dom.Element {
	return traverse(container, func(el *dom.Element) bool {
		v, ok := el.Attr(name)
		return ok && v == value
	}, true, limit)
}

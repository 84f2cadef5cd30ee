// Package dom provides the in-memory HTML-like document tree that the query
// and assertion packages operate on. The variant set is closed: a Node is an
// Element, a Text node, a Fragment, or a Comment. Trees are treated as
// immutable once built; the query layer caches traversal results keyed by
// node identity and never mutates them.
package dom

import "strings"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindFragment
	KindComment
)

// Node is a node in the document tree. Only the four concrete types in this
// package implement it.
type Node interface {
	Kind() Kind
}

// Attr is a single attribute name/value pair. Element attributes keep their
// source order.
type Attr struct {
	Name  string
	Value string
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	TagName  string
	Attrs    []Attr
	Children []Node
}

// Text is a text node.
type Text struct {
	Data string
}

// Fragment is a tagless sequence of children, e.g. the result of parsing
// markup with multiple top-level nodes.
type Fragment struct {
	Children []Node
}

// Comment is an HTML comment. It contributes nothing to text content and is
// never yielded by traversal.
type Comment struct {
	Data string
}

func (*Element) Kind() Kind  { return KindElement }
func (*Text) Kind() Kind     { return KindText }
func (*Fragment) Kind() Kind { return KindFragment }
func (*Comment) Kind() Kind  { return KindComment }

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute, or def when absent.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// HasClassToken reports whether the element's class attribute contains
// token as a whole space-separated entry (not a substring of the raw value).
func (e *Element) HasClassToken(token string) bool {
	cls, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, t := range strings.Fields(cls) {
		if t == token {
			return true
		}
	}
	return false
}

// TextContent concatenates, in document order, the payloads of all Text
// nodes under n. Fragments are transparent; comments contribute nothing.
func TextContent(n Node) string {
	var b strings.Builder
	stack := []Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := node.(type) {
		case *Text:
			b.WriteString(v.Data)
		case *Element:
			for i := len(v.Children) - 1; i >= 0; i-- {
				stack = append(stack, v.Children[i])
			}
		case *Fragment:
			for i := len(v.Children) - 1; i >= 0; i-- {
				stack = append(stack, v.Children[i])
			}
		}
	}
	return b.String()
}

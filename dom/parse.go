package dom

import (
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads a full HTML document and returns its tree. The document node
// becomes a Fragment whose children are the document's top-level nodes.
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return convert(doc), nil
}

// ParseFile reads and parses the HTML document at path.
func ParseFile(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseFragment parses markup in a body context, the way a snippet inside a
// test fixture would be written. A single top-level node is returned
// directly; multiple top-level nodes are wrapped in a Fragment.
func ParseFragment(markup string) (Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, err
	}
	// Whitespace-only text between top-level nodes comes from indented
	// markup and is dropped, so a single indented element stays the root.
	var children []Node
	for _, n := range nodes {
		c := convert(n)
		if c == nil {
			continue
		}
		if t, ok := c.(*Text); ok && strings.TrimSpace(t.Data) == "" {
			continue
		}
		children = append(children, c)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &Fragment{Children: children}, nil
}

// convert maps an x/net/html node onto the package's variant set. Doctype
// and error nodes are dropped.
func convert(n *html.Node) Node {
	switch n.Type {
	case html.ElementNode:
		el := &Element{TagName: n.Data}
		for _, a := range n.Attr {
			el.Attrs = append(el.Attrs, Attr{Name: a.Key, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	case html.TextNode:
		return &Text{Data: n.Data}
	case html.CommentNode:
		return &Comment{Data: n.Data}
	case html.DocumentNode:
		frag := &Fragment{}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				frag.Children = append(frag.Children, child)
			}
		}
		return frag
	default:
		return nil
	}
}

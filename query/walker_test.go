package query

import (
	"testing"

	"github.com/mj1618/ariatest/dom"
)

func parse(t *testing.T, markup string) dom.Node {
	t.Helper()
	n, err := dom.ParseFragment(markup)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return n
}

func tagNames(elements []*dom.Element) []string {
	names := make([]string, 0, len(elements))
	for _, el := range elements {
		names = append(names, el.TagName)
	}
	return names
}

func TestTraverse_DocumentOrder(t *testing.T) {
	container := parse(t, `<div><header><h1>t</h1></header><main><p>a</p><p>b</p></main><footer></footer></div>`)
	got := tagNames(traverse(container, nil, false, 0))
	want := []string{"div", "header", "h1", "main", "p", "p", "footer"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTraverse_SkipRoot(t *testing.T) {
	container := parse(t, `<div><span></span><div></div></div>`)
	got := traverse(container, nil, true, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}
	if got[0].TagName != "span" || got[1].TagName != "div" {
		t.Errorf("unexpected order: %v", tagNames(got))
	}
	// The root is excluded, but a nested element with the same tag is not.
	root := container.(*dom.Element)
	for _, el := range got {
		if el == root {
			t.Error("root element leaked into skip-root traversal")
		}
	}
}

func TestTraverse_FragmentRootIsTransparent(t *testing.T) {
	container := parse(t, `<p>a</p><p>b</p>`)
	if _, ok := container.(*dom.Fragment); !ok {
		t.Fatalf("expected a fragment, got %T", container)
	}
	if got := len(traverse(container, nil, true, 0)); got != 2 {
		t.Errorf("expected 2 elements, got %d", got)
	}
	if got := len(traverse(container, nil, false, 0)); got != 2 {
		t.Errorf("fragment itself should never be yielded, got %d elements", got)
	}
}

func TestTraverse_MaxResults(t *testing.T) {
	container := parse(t, `<ul><li>1</li><li>2</li><li>3</li><li>4</li></ul>`)
	pred := func(el *dom.Element) bool { return el.TagName == "li" }
	got := traverse(container, pred, true, 2)
	if len(got) != 2 {
		t.Fatalf("expected traversal to stop at 2, got %d", len(got))
	}
	if dom.TextContent(got[0]) != "1" || dom.TextContent(got[1]) != "2" {
		t.Errorf("early exit must keep document order, got %v", tagNames(got))
	}
}

func TestAllByAttribute(t *testing.T) {
	container := parse(t, `<form data-x="a"><input data-x="a"><input data-x="b"><select data-x="a"></select></form>`)
	got := allByAttribute(container, "data-x", "a", 0)
	// The container matches too but is excluded.
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].TagName != "input" || got[1].TagName != "select" {
		t.Errorf("unexpected matches: %v", tagNames(got))
	}
}

package query

import (
	"regexp"
	"testing"

	"github.com/mj1618/ariatest/dom"
)

func TestQueryAllByRole_HeadingLevel(t *testing.T) {
	container := parse(t, `
		<div>
			<h1>One</h1>
			<h2>Two</h2>
			<div role="heading" aria-level="2">Also two</div>
			<div role="heading" aria-level=" 2 ">Spaced two</div>
			<div role="heading" aria-level="x">Broken</div>
			<div role="heading">No level</div>
		</div>`)

	got := QueryAllByRole(container, "heading", RoleOptions{Level: 2})
	if len(got) != 3 {
		t.Fatalf("expected 3 level-2 headings, got %d", len(got))
	}

	all := QueryAllByRole(container, "heading", RoleOptions{})
	if len(all) != 6 {
		t.Errorf("without a level filter all headings match, got %d", len(all))
	}
}

func TestQueryAllByRole_InvalidAriaLevelExcluded(t *testing.T) {
	container := parse(t, `<div><div role="heading" aria-level="abc">x</div><div role="heading" aria-level="">y</div></div>`)
	if got := QueryAllByRole(container, "heading", RoleOptions{Level: 1}); len(got) != 0 {
		t.Errorf("non-integer aria-level must not match any level, got %d", len(got))
	}
}

func TestQueryAllByRole_LevelIgnoredForOtherRoles(t *testing.T) {
	container := parse(t, `<div><button>go</button></div>`)
	if got := QueryAllByRole(container, "button", RoleOptions{Level: 3}); len(got) != 1 {
		t.Errorf("level only constrains headings, got %d matches", len(got))
	}
}

func TestQueryAllByRole_NameFilter(t *testing.T) {
	container := parse(t, `
		<div>
			<button>Save changes</button>
			<button>Cancel</button>
			<button aria-label="Save draft">D</button>
		</div>`)

	got := QueryAllByRole(container, "button", RoleOptions{Name: "Save"})
	if len(got) != 2 {
		t.Fatalf("expected 2 buttons with Save in name, got %d", len(got))
	}

	// Substring matching is case-sensitive.
	if got := QueryAllByRole(container, "button", RoleOptions{Name: "save"}); len(got) != 0 {
		t.Errorf("lowercase should not match, got %d", len(got))
	}
}

func TestQueryAllByRole_NamePatternTakesPrecedence(t *testing.T) {
	container := parse(t, `<div><button>Save</button><button>Submit</button></div>`)
	opts := RoleOptions{
		Name:        "Save",
		NamePattern: regexp.MustCompile(`^Su`),
	}
	got := QueryAllByRole(container, "button", opts)
	if len(got) != 1 {
		t.Fatalf("expected pattern to win over substring, got %d matches", len(got))
	}
	if text := dom.TextContent(got[0]); text != "Submit" {
		t.Errorf("matched %q, want the pattern's element", text)
	}
}

func TestQueryAllByRole_LinkNameIncludesHref(t *testing.T) {
	container := parse(t, `<div><a href="/settings">Open</a><a href="/home">Open</a></div>`)
	got := QueryAllByRole(container, "link", RoleOptions{Name: "/settings"})
	if len(got) != 1 {
		t.Errorf("href takes part in link names, got %d matches", len(got))
	}
}

func TestQueryAllByRole_RootExcluded(t *testing.T) {
	container := parse(t, `<button><span role="button">inner</span></button>`)
	got := QueryAllByRole(container, "button", RoleOptions{})
	if len(got) != 1 {
		t.Fatalf("container itself is never a result, got %d", len(got))
	}
	if got[0].TagName != "span" {
		t.Errorf("expected nested span, got <%s>", got[0].TagName)
	}
}

func TestGetByRole_ErrorMessages(t *testing.T) {
	container := parse(t, `<div><button>a</button><button>b</button></div>`)

	_, err := GetByRole(container, "checkbox", RoleOptions{})
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if want := `unable to find element with role="checkbox"`; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	_, err = GetByRole(container, "button", RoleOptions{})
	if !IsMultipleFound(err) {
		t.Fatalf("expected MultipleFoundError, got %v", err)
	}
	if want := `found multiple elements with role="button"`; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestQueryByRole(t *testing.T) {
	container := parse(t, `<div><button>a</button><button>b</button><nav></nav></div>`)

	el, err := QueryByRole(container, "navigation", RoleOptions{})
	if err != nil || el == nil {
		t.Fatalf("expected single match, got %v, %v", el, err)
	}

	el, err = QueryByRole(container, "tab", RoleOptions{})
	if err != nil || el != nil {
		t.Errorf("zero matches should be nil, nil; got %v, %v", el, err)
	}

	// More than one match is an error, not a silent first pick.
	if _, err = QueryByRole(container, "button", RoleOptions{}); !IsMultipleFound(err) {
		t.Errorf("expected MultipleFoundError, got %v", err)
	}
}

func TestGetAllByRole(t *testing.T) {
	container := parse(t, `<ul><li>1</li><li>2</li></ul>`)

	elements, err := GetAllByRole(container, "listitem", RoleOptions{})
	if err != nil || len(elements) != 2 {
		t.Fatalf("got %d, %v", len(elements), err)
	}

	if _, err := GetAllByRole(container, "tab", RoleOptions{}); !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

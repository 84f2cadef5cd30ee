package assert

import (
	"errors"
	"strings"
	"testing"

	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/query"
)

func parse(t *testing.T, markup string) dom.Node {
	t.Helper()
	n, err := dom.ParseFragment(markup)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return n
}

func TestByRole_Pass(t *testing.T) {
	page := parse(t, `<div><h1>Dashboard</h1><button>Save</button></div>`)

	if err := (ByRole{Role: "heading", Level: 1}).Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
	if err := (ByRole{Role: "button", Name: "Save"}).TextContent("Save").Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

func TestByRole_NotFoundIncludesQueryAndContainer(t *testing.T) {
	page := parse(t, `<div><p>nothing here</p></div>`)

	err := ByRole{Role: "button"}.Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, `Query: role="button"`) {
		t.Errorf("missing query description: %q", msg)
	}
	if !strings.Contains(msg, "Searched in:") || !strings.Contains(msg, "<p>nothing here</p>") {
		t.Errorf("missing container rendering: %q", msg)
	}

	var f *Failure
	if !errors.As(err, &f) {
		t.Fatalf("expected *Failure, got %T", err)
	}
	if !query.IsNotFound(f.Unwrap()) {
		t.Errorf("expected wrapped NotFoundError, got %v", f.Unwrap())
	}
}

func TestByRole_ContainerRenderingTruncated(t *testing.T) {
	page := parse(t, `<div>`+strings.Repeat("<span>padding</span>", 50)+`</div>`)
	err := ByRole{Role: "button"}.Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "...") {
		t.Errorf("long containers should be truncated: %q", err.Error())
	}
}

func TestByRole_Negation(t *testing.T) {
	page := parse(t, `<div><button>Save</button></div>`)

	if err := (ByRole{Role: "checkbox"}).Not().Check(page); err != nil {
		t.Errorf("absent element should pass a negated check: %v", err)
	}

	err := ByRole{Role: "button"}.Not().Check(page)
	if err == nil {
		t.Fatal("present element should fail a negated check")
	}
	if !strings.Contains(err.Error(), "expected element NOT to exist but found:") {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "<button>Save</button>") {
		t.Errorf("message should render the found element: %q", err.Error())
	}
}

func TestNegation_MultipleFoundStillFails(t *testing.T) {
	page := parse(t, `<div><button>a</button><button>b</button></div>`)

	// Negation means "no match at all"; an ambiguous query is not a pass.
	err := ByRole{Role: "button"}.Not().Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	var f *Failure
	if !errors.As(err, &f) {
		t.Fatalf("expected *Failure, got %T", err)
	}
	if !query.IsMultipleFound(f.Unwrap()) {
		t.Errorf("expected wrapped MultipleFoundError, got %v", f.Unwrap())
	}
}

func TestTextContent_ExactEquality(t *testing.T) {
	page := parse(t, `<div><button>Save all</button></div>`)

	if err := (ByRole{Role: "button"}).TextContent("Save all").Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}

	// Equality is over the raw text content, not a substring.
	err := ByRole{Role: "button"}.TextContent("Save").Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), `expected text: "Save" but got: "Save all"`) {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWithAttribute(t *testing.T) {
	page := parse(t, `<div><input type="email" required></div>`)

	b := ByTagName{TagName: "input"}
	if err := b.WithAttribute("type", "email").Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
	// Bare name asserts presence only.
	if err := b.WithAttribute("required").Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}

	err := b.WithAttribute("type", "text").Check(page)
	if err == nil || !strings.Contains(err.Error(), `expected attribute "type"="text" but got "email"`) {
		t.Errorf("unexpected: %v", err)
	}

	err = b.WithAttribute("placeholder").Check(page)
	if err == nil || !strings.Contains(err.Error(), `expected attribute "placeholder" not found`) {
		t.Errorf("unexpected: %v", err)
	}
}

func TestBuildersAreImmutable(t *testing.T) {
	page := parse(t, `<div><button>Save</button></div>`)

	base := ByRole{Role: "button"}
	negated := base.Not()

	if err := base.Check(page); err != nil {
		t.Errorf("the original builder must be unaffected by chaining: %v", err)
	}
	if err := negated.Check(page); err == nil {
		t.Error("the derived builder must carry the negation")
	}
}

func TestByText_ByLabelText_ByTestID_ByClass_ByID(t *testing.T) {
	page := parse(t, `<form><label for="user">Username</label>`+
		`<input id="user" type="text" data-testid="user-input" class="field">`+
		`<p>Fill in your details</p></form>`)

	tests := []struct {
		name string
		err  error
	}{
		{"text", ByText{Text: "details"}.Check(page)},
		{"label", ByLabelText{Label: "Username"}.Check(page)},
		{"testid", ByTestID{TestID: "user-input"}.Check(page)},
		{"class", ByClass{Class: "field"}.Check(page)},
		{"id", ByID{ID: "user"}.Check(page)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err != nil {
				t.Errorf("unexpected failure: %v", tt.err)
			}
		})
	}
}

func TestByTestID_CustomAttribute(t *testing.T) {
	page := parse(t, `<div><span data-qa="hint">x</span></div>`)
	if err := (ByTestID{TestID: "hint", Attribute: "data-qa"}).Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

func TestByTagName_WithAttrs(t *testing.T) {
	page := parse(t, `<form><input type="radio" name="a"><input type="text" name="b"></form>`)

	b := ByTagName{TagName: "input", Attrs: map[string]string{"type": "radio"}}
	if err := b.Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}

	if err := (ByTagName{TagName: "input"}).Check(page); err == nil {
		t.Error("two inputs should make the single assertion ambiguous")
	}
}

func TestAllByRole_Count(t *testing.T) {
	page := parse(t, `<ul><li>1</li><li>2</li></ul>`)

	if err := (AllByRole{Role: "listitem"}).Count(2).Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}

	err := AllByRole{Role: "listitem"}.Count(3).Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "expected count: 3 but found: 2 elements") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestAllByRole_NthOutOfBounds(t *testing.T) {
	page := parse(t, `<ul><li>1</li><li>2</li></ul>`)

	err := AllByRole{Role: "listitem"}.Count(2).Nth(5).TextContent("x").Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "index 5 out of bounds, found 2 elements") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestAllByRole_NthChecks(t *testing.T) {
	page := parse(t, `<ul><li>First</li><li>Second</li></ul>`)

	if err := (AllByRole{Role: "listitem"}).Nth(1).TextContent("Second").Check(page); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}

	err := AllByRole{Role: "listitem"}.Nth(0).TextContent("Second").Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "nth=0") {
		t.Errorf("failure should name the selected index: %q", err.Error())
	}
}

func TestAllByRole_Negation(t *testing.T) {
	page := parse(t, `<ul><li>1</li></ul>`)

	if err := (AllByRole{Role: "tab"}).Not().Check(page); err != nil {
		t.Errorf("absent elements should pass a negated list check: %v", err)
	}

	err := AllByRole{Role: "listitem"}.Not().Check(page)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "expected elements NOT to exist but found 1") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestAllByClass_AllByText_AllByTagName(t *testing.T) {
	page := parse(t, `<div><p class="item">x</p><p class="item">y</p><span class="item">z</span></div>`)

	if err := (AllByClass{Class: "item"}).Count(3).Check(page); err != nil {
		t.Errorf("class: %v", err)
	}
	if err := (AllByTagName{TagName: "p"}).Count(2).Check(page); err != nil {
		t.Errorf("tag: %v", err)
	}
	if err := (AllByText{Text: "y"}).Count(1).Check(page); err != nil {
		t.Errorf("text: %v", err)
	}
}

func TestAllByTestID_AllByLabelText(t *testing.T) {
	page := parse(t, `
		<form>
			<input data-testid="f" aria-label="Name first">
			<input data-testid="f" aria-label="Name last">
		</form>`)

	if err := (AllByTestID{TestID: "f"}).Count(2).Check(page); err != nil {
		t.Errorf("testid: %v", err)
	}
	if err := (AllByLabelText{Label: "Name"}).Count(2).Check(page); err != nil {
		t.Errorf("label: %v", err)
	}
}

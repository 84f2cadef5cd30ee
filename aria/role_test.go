package aria

import (
	"testing"

	"github.com/mj1618/ariatest/dom"
)

func el(tag string, attrs ...dom.Attr) *dom.Element {
	return &dom.Element{TagName: tag, Attrs: attrs}
}

func TestRoleFor_ImplicitTagRoles(t *testing.T) {
	tests := []struct {
		name string
		el   *dom.Element
		want string
	}{
		{"button", el("button"), "button"},
		{"summary", el("summary"), "button"},
		{"nav", el("nav"), "navigation"},
		{"main", el("main"), "main"},
		{"header", el("header"), "banner"},
		{"footer", el("footer"), "contentinfo"},
		{"aside", el("aside"), "complementary"},
		{"h1", el("h1"), "heading"},
		{"h3", el("h3"), "heading"},
		{"h6", el("h6"), "heading"},
		{"anchor", el("a"), "link"},
		{"ul", el("ul"), "list"},
		{"ol", el("ol"), "list"},
		{"li", el("li"), "listitem"},
		{"form", el("form"), "form"},
		{"img", el("img"), "img"},
		{"textarea", el("textarea"), "textbox"},
		{"uppercase_tag", el("BUTTON"), "button"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RoleFor(tt.el)
			if !ok {
				t.Fatalf("expected a role for <%s>", tt.el.TagName)
			}
			if got != tt.want {
				t.Errorf("RoleFor(<%s>) = %q, want %q", tt.el.TagName, got, tt.want)
			}
		})
	}
}

func TestRoleFor_InputTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		want string
	}{
		{"text", "text", "textbox"},
		{"email", "email", "textbox"},
		{"password", "password", "textbox"},
		{"number", "number", "spinbutton"},
		{"checkbox", "checkbox", "checkbox"},
		{"radio", "radio", "radio"},
		{"button", "button", "button"},
		{"submit", "submit", "button"},
		{"reset", "reset", "button"},
		{"unknown_type", "datetime-local", "textbox"},
		{"uppercase_type", "CHECKBOX", "checkbox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RoleFor(el("input", dom.Attr{Name: "type", Value: tt.typ}))
			if !ok {
				t.Fatalf("expected a role for input type=%q", tt.typ)
			}
			if got != tt.want {
				t.Errorf("input type=%q = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestRoleFor_InputWithoutType(t *testing.T) {
	got, ok := RoleFor(el("input"))
	if !ok || got != "textbox" {
		t.Errorf("input with no type = %q, %v; want textbox", got, ok)
	}
	got, ok = RoleFor(el("input", dom.Attr{Name: "type", Value: ""}))
	if !ok || got != "textbox" {
		t.Errorf("input with empty type = %q, %v; want textbox", got, ok)
	}
}

func TestRoleFor_ExplicitRoleWins(t *testing.T) {
	got, ok := RoleFor(el("button", dom.Attr{Name: "role", Value: "tab"}))
	if !ok || got != "tab" {
		t.Errorf("explicit role = %q, %v; want tab", got, ok)
	}

	// Unknown role values pass through unvalidated.
	got, ok = RoleFor(el("div", dom.Attr{Name: "role", Value: "custom-thing"}))
	if !ok || got != "custom-thing" {
		t.Errorf("custom role = %q, %v; want custom-thing", got, ok)
	}
}

func TestRoleFor_NoRole(t *testing.T) {
	if role, ok := RoleFor(el("div")); ok {
		t.Errorf("div should have no role, got %q", role)
	}
	if role, ok := RoleFor(el("span")); ok {
		t.Errorf("span should have no role, got %q", role)
	}
	if role, ok := RoleFor(&dom.Text{Data: "hello"}); ok {
		t.Errorf("text node should have no role, got %q", role)
	}
	if role, ok := RoleFor(&dom.Fragment{}); ok {
		t.Errorf("fragment should have no role, got %q", role)
	}
}

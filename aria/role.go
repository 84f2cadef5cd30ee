// Package aria implements the role-resolution and accessible-name
// computation algorithms used by the query layer. Both are pure functions
// over dom nodes; caching lives in the query package.
package aria

import (
	"strings"

	"github.com/mj1618/ariatest/dom"
)

// tagRoles maps HTML tag names to their implicit ARIA role.
var tagRoles = map[string]string{
	"button":   "button",
	"summary":  "button",
	"nav":      "navigation",
	"main":     "main",
	"header":   "banner",
	"footer":   "contentinfo",
	"aside":    "complementary",
	"h1":       "heading",
	"h2":       "heading",
	"h3":       "heading",
	"h4":       "heading",
	"h5":       "heading",
	"h6":       "heading",
	"a":        "link",
	"ul":       "list",
	"ol":       "list",
	"li":       "listitem",
	"form":     "form",
	"img":      "img",
	"textarea": "textbox",
}

// inputTypeRoles maps the type attribute of <input> elements to a role.
// Unknown types fall back to textbox.
var inputTypeRoles = map[string]string{
	"text":     "textbox",
	"email":    "textbox",
	"password": "textbox",
	"number":   "spinbutton",
	"checkbox": "checkbox",
	"radio":    "radio",
	"button":   "button",
	"submit":   "button",
	"reset":    "button",
}

// RoleFor computes the ARIA role of a node. The second return value is false
// when the node has no role (non-element nodes, or elements with no explicit
// or implicit role).
//
// An explicit role attribute wins and is returned verbatim, without
// validation against any known role set.
func RoleFor(n dom.Node) (string, bool) {
	el, ok := n.(*dom.Element)
	if !ok {
		return "", false
	}

	if role, ok := el.Attr("role"); ok {
		return role, true
	}

	tag := strings.ToLower(el.TagName)
	if role, ok := tagRoles[tag]; ok {
		return role, true
	}

	if tag == "input" {
		typ := strings.ToLower(el.AttrOr("type", ""))
		if typ == "" {
			typ = "text"
		}
		if role, ok := inputTypeRoles[typ]; ok {
			return role, true
		}
		return "textbox", true
	}

	return "", false
}

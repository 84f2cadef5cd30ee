package assert

import (
	"fmt"

	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/query"
)

// ByRole asserts that exactly one element with the given computed ARIA role
// exists in the container.
//
//	assert.ByRole{Role: "heading", Level: 1}.Check(page)
//	assert.ByRole{Role: "button", Name: "Submit"}.TextContent("Submit").Check(page)
type ByRole struct {
	Role  string
	Level int
	Name  string
	c     checks
}

func (b ByRole) Not() ByRole                 { b.c.negate = true; return b }
func (b ByRole) TextContent(s string) ByRole { b.c = b.c.withText(s); return b }
func (b ByRole) WithAttribute(name string, value ...string) ByRole {
	b.c = b.c.withAttribute(name, value)
	return b
}

func (b ByRole) Check(container dom.Node) error {
	opts := query.RoleOptions{Level: b.Level, Name: b.Name}
	el, err := query.GetByRole(container, b.Role, opts)
	return b.c.single(el, err, container, b.describe())
}

func (b ByRole) describe() string {
	desc := fmt.Sprintf("role=%q", b.Role)
	if b.Level > 0 {
		desc += fmt.Sprintf(", level=%d", b.Level)
	}
	if b.Name != "" {
		desc += fmt.Sprintf(", name=%q", b.Name)
	}
	return desc
}

// ByText asserts that exactly one element whose text content contains Text
// exists in the container.
type ByText struct {
	Text string
	c    checks
}

func (b ByText) Not() ByText                 { b.c.negate = true; return b }
func (b ByText) TextContent(s string) ByText { b.c = b.c.withText(s); return b }
func (b ByText) WithAttribute(name string, value ...string) ByText {
	b.c = b.c.withAttribute(name, value)
	return b
}

func (b ByText) Check(container dom.Node) error {
	el, err := query.GetByText(container, b.Text)
	return b.c.single(el, err, container, fmt.Sprintf("text=%q", b.Text))
}

// ByLabelText asserts that exactly one element labelled with Label exists in
// the container (aria-label, <label for>, label nesting, aria-labelledby).
type ByLabelText struct {
	Label string
	c     checks
}

func (b ByLabelText) Not() ByLabelText                 { b.c.negate = true; return b }
func (b ByLabelText) TextContent(s string) ByLabelText { b.c = b.c.withText(s); return b }
func (b ByLabelText) WithAttribute(name string, value ...string) ByLabelText {
	b.c = b.c.withAttribute(name, value)
	return b
}

func (b ByLabelText) Check(container dom.Node) error {
	el, err := query.GetByLabelText(container, b.Label)
	return b.c.single(el, err, container, fmt.Sprintf("label=%q", b.Label))
}

// ByTestID asserts that exactly one element with the given test ID exists in
// the container. Attribute overrides the matched attribute (default
// data-testid).
type ByTestID struct {
	TestID    string
	Attribute string
	c         checks
}

func (b ByTestID) Not() ByTestID                 { b.c.negate = true; return b }
func (b ByTestID) TextContent(s string) ByTestID { b.c = b.c.withText(s); return b }
func (b ByTestID) WithAttribute(name string, value ...string) ByTestID {
	b.c = b.c.withAttribute(name, value)
	return b
}

func (b ByTestID) Check(container dom.Node) error {
	el, err := query.GetByTestID(container, b.TestID, query.TestIDOptions{Attribute: b.Attribute})
	return b.c.single(el, err, container, fmt.Sprintf("test_id=%q", b.TestID))
}

// ByClass asserts that exactly one element carrying the given CSS class
// token exists in the container.
type ByClass struct {
	Class string
	c     checks
}

func (b ByClass) Not() ByClass                 { b.c.negate = true; return b }
func (b ByClass) TextContent(s string) ByClass { b.c = b.c.withText(s); return b }
func (b ByClass) WithAttribute(name string, value ...string) ByClass {
	b.c = b.c.withAttribute(name, value)
	return b
}

func (b ByClass) Check(container dom.Node) error {
	el, err := query.GetByClass(container, b.Class)
	return b.c.single(el, err, container, fmt.Sprintf("class=%q", b.Class))
}

// ByID asserts that exactly one element with the given id attribute exists
// in the container.
type ByID struct {
	ID string
	c  checks
}

func (b ByID) Not() ByID                 { b.c.negate = true; return b }
func (b ByID) TextContent(s string) ByID { b.c = b.c.withText(s); return b }
func (b ByID) WithAttribute(name string, value ...string) ByID {
	b.c = b.c.withAttribute(name, value)
	return b
}

func (b ByID) Check(container dom.Node) error {
	el, err := query.GetByID(container, b.ID)
	return b.c.single(el, err, container, fmt.Sprintf("id=%q", b.ID))
}

// ByTagName asserts that exactly one element with the given tag name exists
// in the container, optionally filtered by attributes (see
// query.TagOptions).
type ByTagName struct {
	TagName string
	Attrs   map[string]string
	c       checks
}

func (b ByTagName) Not() ByTagName                 { b.c.negate = true; return b }
func (b ByTagName) TextContent(s string) ByTagName { b.c = b.c.withText(s); return b }
func (b ByTagName) WithAttribute(name string, value ...string) ByTagName {
	b.c = b.c.withAttribute(name, value)
	return b
}

func (b ByTagName) Check(container dom.Node) error {
	el, err := query.GetByTagName(container, b.TagName, query.TagOptions{Attrs: b.Attrs})
	return b.c.single(el, err, container, fmt.Sprintf("tag_name=%q", b.TagName))
}

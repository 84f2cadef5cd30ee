package assert

import (
	"fmt"

	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/query"
)

// AllByRole asserts over the full list of elements with the given role.
//
//	assert.AllByRole{Role: "listitem"}.Count(4).Check(list)
//	assert.AllByRole{Role: "button"}.Nth(0).TextContent("Submit").Check(form)
type AllByRole struct {
	Role  string
	Level int
	Name  string
	c     listChecks
}

func (b AllByRole) Not() AllByRole                 { b.c.negate = true; return b }
func (b AllByRole) Count(n int) AllByRole          { b.c = b.c.withCount(n); return b }
func (b AllByRole) Nth(i int) AllByRole            { b.c = b.c.withNth(i); return b }
func (b AllByRole) TextContent(s string) AllByRole { b.c.checks = b.c.withText(s); return b }
func (b AllByRole) WithAttribute(name string, value ...string) AllByRole {
	b.c.checks = b.c.withAttribute(name, value)
	return b
}

func (b AllByRole) Check(container dom.Node) error {
	opts := query.RoleOptions{Level: b.Level, Name: b.Name}
	elements, err := query.GetAllByRole(container, b.Role, opts)
	return b.c.list(elements, err, container, b.describe())
}

func (b AllByRole) describe() string {
	desc := fmt.Sprintf("role=%q", b.Role)
	if b.Level > 0 {
		desc += fmt.Sprintf(", level=%d", b.Level)
	}
	if b.Name != "" {
		desc += fmt.Sprintf(", name=%q", b.Name)
	}
	return desc
}

// AllByText asserts over the full list of elements whose text content
// contains Text.
type AllByText struct {
	Text string
	c    listChecks
}

func (b AllByText) Not() AllByText                 { b.c.negate = true; return b }
func (b AllByText) Count(n int) AllByText          { b.c = b.c.withCount(n); return b }
func (b AllByText) Nth(i int) AllByText            { b.c = b.c.withNth(i); return b }
func (b AllByText) TextContent(s string) AllByText { b.c.checks = b.c.withText(s); return b }
func (b AllByText) WithAttribute(name string, value ...string) AllByText {
	b.c.checks = b.c.withAttribute(name, value)
	return b
}

func (b AllByText) Check(container dom.Node) error {
	elements, err := query.GetAllByText(container, b.Text)
	return b.c.list(elements, err, container, fmt.Sprintf("text=%q", b.Text))
}

// AllByLabelText asserts over the full list of elements labelled with
// Label.
type AllByLabelText struct {
	Label string
	c     listChecks
}

func (b AllByLabelText) Not() AllByLabelText                 { b.c.negate = true; return b }
func (b AllByLabelText) Count(n int) AllByLabelText          { b.c = b.c.withCount(n); return b }
func (b AllByLabelText) Nth(i int) AllByLabelText            { b.c = b.c.withNth(i); return b }
func (b AllByLabelText) TextContent(s string) AllByLabelText { b.c.checks = b.c.withText(s); return b }
func (b AllByLabelText) WithAttribute(name string, value ...string) AllByLabelText {
	b.c.checks = b.c.withAttribute(name, value)
	return b
}

func (b AllByLabelText) Check(container dom.Node) error {
	elements, err := query.GetAllByLabelText(container, b.Label)
	return b.c.list(elements, err, container, fmt.Sprintf("label=%q", b.Label))
}

// AllByTestID asserts over the full list of elements with the given test
// ID.
type AllByTestID struct {
	TestID    string
	Attribute string
	c         listChecks
}

func (b AllByTestID) Not() AllByTestID                 { b.c.negate = true; return b }
func (b AllByTestID) Count(n int) AllByTestID          { b.c = b.c.withCount(n); return b }
func (b AllByTestID) Nth(i int) AllByTestID            { b.c = b.c.withNth(i); return b }
func (b AllByTestID) TextContent(s string) AllByTestID { b.c.checks = b.c.withText(s); return b }
func (b AllByTestID) WithAttribute(name string, value ...string) AllByTestID {
	b.c.checks = b.c.withAttribute(name, value)
	return b
}

func (b AllByTestID) Check(container dom.Node) error {
	elements, err := query.GetAllByTestID(container, b.TestID, query.TestIDOptions{Attribute: b.Attribute})
	return b.c.list(elements, err, container, fmt.Sprintf("test_id=%q", b.TestID))
}

// AllByClass asserts over the full list of elements carrying the given CSS
// class token.
type AllByClass struct {
	Class string
	c     listChecks
}

func (b AllByClass) Not() AllByClass                 { b.c.negate = true; return b }
func (b AllByClass) Count(n int) AllByClass          { b.c = b.c.withCount(n); return b }
func (b AllByClass) Nth(i int) AllByClass            { b.c = b.c.withNth(i); return b }
func (b AllByClass) TextContent(s string) AllByClass { b.c.checks = b.c.withText(s); return b }
func (b AllByClass) WithAttribute(name string, value ...string) AllByClass {
	b.c.checks = b.c.withAttribute(name, value)
	return b
}

func (b AllByClass) Check(container dom.Node) error {
	elements, err := query.GetAllByClass(container, b.Class)
	return b.c.list(elements, err, container, fmt.Sprintf("class=%q", b.Class))
}

// AllByTagName asserts over the full list of elements with the given tag
// name.
type AllByTagName struct {
	TagName string
	Attrs   map[string]string
	c       listChecks
}

func (b AllByTagName) Not() AllByTagName                 { b.c.negate = true; return b }
func (b AllByTagName) Count(n int) AllByTagName          { b.c = b.c.withCount(n); return b }
func (b AllByTagName) Nth(i int) AllByTagName            { b.c = b.c.withNth(i); return b }
func (b AllByTagName) TextContent(s string) AllByTagName { b.c.checks = b.c.withText(s); return b }
func (b AllByTagName) WithAttribute(name string, value ...string) AllByTagName {
	b.c.checks = b.c.withAttribute(name, value)
	return b
}

func (b AllByTagName) Check(container dom.Node) error {
	elements, err := query.GetAllByTagName(container, b.TagName, query.TagOptions{Attrs: b.Attrs})
	return b.c.list(elements, err, container, fmt.Sprintf("tag_name=%q", b.TagName))
}

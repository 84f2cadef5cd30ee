package query

import "github.com/mj1618/ariatest/dom"

// Package-level query functions delegate to the process-wide default Engine.
// Use NewEngine and the Engine methods directly when isolated caches are
// needed, e.g. one engine per test binary shard.

func QueryAllByRole(container dom.Node, role string, opts RoleOptions) []*dom.Element {
	return std.QueryAllByRole(container, role, opts)
}

func QueryByRole(container dom.Node, role string, opts RoleOptions) (*dom.Element, error) {
	return std.QueryByRole(container, role, opts)
}

func GetByRole(container dom.Node, role string, opts RoleOptions) (*dom.Element, error) {
	return std.GetByRole(container, role, opts)
}

func GetAllByRole(container dom.Node, role string, opts RoleOptions) ([]*dom.Element, error) {
	return std.GetAllByRole(container, role, opts)
}

func QueryAllByText(container dom.Node, text string) []*dom.Element {
	return std.QueryAllByText(container, text)
}

func QueryByText(container dom.Node, text string) (*dom.Element, error) {
	return std.QueryByText(container, text)
}

func GetByText(container dom.Node, text string) (*dom.Element, error) {
	return std.GetByText(container, text)
}

func GetAllByText(container dom.Node, text string) ([]*dom.Element, error) {
	return std.GetAllByText(container, text)
}

func QueryAllByLabelText(container dom.Node, text string) []*dom.Element {
	return std.QueryAllByLabelText(container, text)
}

func QueryByLabelText(container dom.Node, text string) (*dom.Element, error) {
	return std.QueryByLabelText(container, text)
}

func GetByLabelText(container dom.Node, text string) (*dom.Element, error) {
	return std.GetByLabelText(container, text)
}

func GetAllByLabelText(container dom.Node, text string) ([]*dom.Element, error) {
	return std.GetAllByLabelText(container, text)
}

func QueryAllByTestID(container dom.Node, testID string, opts TestIDOptions) []*dom.Element {
	return std.QueryAllByTestID(container, testID, opts)
}

func QueryByTestID(container dom.Node, testID string, opts TestIDOptions) (*dom.Element, error) {
	return std.QueryByTestID(container, testID, opts)
}

func GetByTestID(container dom.Node, testID string, opts TestIDOptions) (*dom.Element, error) {
	return std.GetByTestID(container, testID, opts)
}

func GetAllByTestID(container dom.Node, testID string, opts TestIDOptions) ([]*dom.Element, error) {
	return std.GetAllByTestID(container, testID, opts)
}

func QueryAllByClass(container dom.Node, class string) []*dom.Element {
	return std.QueryAllByClass(container, class)
}

func QueryByClass(container dom.Node, class string) (*dom.Element, error) {
	return std.QueryByClass(container, class)
}

func GetByClass(container dom.Node, class string) (*dom.Element, error) {
	return std.GetByClass(container, class)
}

func GetAllByClass(container dom.Node, class string) ([]*dom.Element, error) {
	return std.GetAllByClass(container, class)
}

func QueryAllByID(container dom.Node, id string) []*dom.Element {
	return std.QueryAllByID(container, id)
}

func QueryByID(container dom.Node, id string) (*dom.Element, error) {
	return std.QueryByID(container, id)
}

func GetByID(container dom.Node, id string) (*dom.Element, error) {
	return std.GetByID(container, id)
}

func GetAllByID(container dom.Node, id string) ([]*dom.Element, error) {
	return std.GetAllByID(container, id)
}

func QueryAllByTagName(container dom.Node, tag string, opts TagOptions) []*dom.Element {
	return std.QueryAllByTagName(container, tag, opts)
}

func QueryByTagName(container dom.Node, tag string, opts TagOptions) (*dom.Element, error) {
	return std.QueryByTagName(container, tag, opts)
}

func GetByTagName(container dom.Node, tag string, opts TagOptions) (*dom.Element, error) {
	return std.GetByTagName(container, tag, opts)
}

func GetAllByTagName(container dom.Node, tag string, opts TagOptions) ([]*dom.Element, error) {
	return std.GetAllByTagName(container, tag, opts)
}

// ClearAllCaches empties the default engine's caches and resets their
// statistics.
func ClearAllCaches() { std.ClearCaches() }

// Stats returns per-cache statistics for the default engine.
func Stats() map[string]CacheStats { return std.CacheStatsByName() }

// CacheScope overrides the default engine's caching flag; see
// Engine.CacheScope.
func CacheScope(enabled, clearOnExit bool) func() {
	return std.CacheScope(enabled, clearOnExit)
}

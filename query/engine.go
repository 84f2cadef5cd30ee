// Package query locates elements within a dom tree the way an assistive
// technology user would: by computed ARIA role, visible text, associated
// label, test identifier, CSS class token, HTML id, or tag name.
//
// Each query family exposes four variants with uniform semantics:
//
//	QueryAllByX  -> list, never fails (empty on no match)
//	QueryByX     -> single or nil; MultipleFoundError when more than one match
//	GetByX       -> single; NotFoundError on zero, MultipleFoundError on >1
//	GetAllByX    -> list; NotFoundError on zero
//
// Queries run against an Engine, which owns the element-list and role caches.
// A process-wide default Engine backs the package-level functions, mirroring
// the convenience of a singleton while keeping the Engine itself injectable.
package query

import (
	"sync"

	"github.com/mj1618/ariatest/aria"
	"github.com/mj1618/ariatest/dom"
)

// Engine holds the caches and the caching-enabled flag for a set of queries.
// The zero value is not usable; construct with NewEngine.
//
// An Engine is safe for concurrent use by multiple goroutines as long as the
// trees being queried are not mutated during reads. A race may compute the
// same traversal twice, but never corrupts the caches.
type Engine struct {
	mu      sync.Mutex
	enabled bool

	lists *elementListCache
	roles *roleCache
}

// NewEngine returns an Engine with empty caches and caching enabled.
func NewEngine() *Engine {
	return &Engine{
		enabled: true,
		lists:   newElementListCache(),
		roles:   newRoleCache(),
	}
}

// std is the process-wide engine behind the package-level query functions.
var std = NewEngine()

// Default returns the process-wide Engine used by the package-level query
// functions.
func Default() *Engine { return std }

func (e *Engine) cachingEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// CacheScope overrides the caching-enabled flag and returns a restore
// function, intended for use with defer:
//
//	defer engine.CacheScope(false, false)()
//
// The restore function reinstates the previous flag value, so scopes nest
// like a stack. When clearOnExit is true, all caches are cleared on restore.
func (e *Engine) CacheScope(enabled, clearOnExit bool) func() {
	e.mu.Lock()
	prev := e.enabled
	e.enabled = enabled
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		e.enabled = prev
		e.mu.Unlock()
		if clearOnExit {
			e.ClearCaches()
		}
	}
}

// ClearCaches empties both caches and resets their statistics.
func (e *Engine) ClearCaches() {
	e.lists.clear()
	e.roles.clear()
}

// CacheStatsByName returns a snapshot of per-cache statistics, keyed
// "element_list" and "role".
func (e *Engine) CacheStatsByName() map[string]CacheStats {
	return map[string]CacheStats{
		"element_list": e.lists.snapshot(),
		"role":         e.roles.snapshot(),
	}
}

// allElements returns every element under container in document order,
// consulting the element-list cache. Early-exit traversals (maxResults > 0)
// are partial and therefore never cached.
func (e *Engine) allElements(container dom.Node, skipRoot bool, maxResults int) []*dom.Element {
	if maxResults <= 0 && e.cachingEnabled() {
		if cached, ok := e.lists.get(container, skipRoot); ok {
			return cached
		}
		elements := traverse(container, nil, skipRoot, 0)
		e.lists.set(container, skipRoot, elements)
		return elements
	}
	return traverse(container, nil, skipRoot, maxResults)
}

// RoleFor resolves a node's ARIA role through the role cache. The cache is
// tri-state: it remembers elements already computed to have no role, so the
// resolver runs at most once per element while caching is enabled.
func (e *Engine) RoleFor(n dom.Node) (string, bool) {
	el, isElement := n.(*dom.Element)
	if !isElement || !e.cachingEnabled() {
		return aria.RoleFor(n)
	}
	if role, none, cached := e.roles.get(el); cached {
		return role, !none
	}
	role, hasRole := aria.RoleFor(el)
	e.roles.set(el, role, !hasRole)
	return role, hasRole
}

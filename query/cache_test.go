package query

import (
	"sync"
	"testing"

	"github.com/mj1618/ariatest/dom"
)

func TestElementListCache_MissThenHit(t *testing.T) {
	e := NewEngine()
	container := parse(t, `<div><p>a</p><p>b</p></div>`)

	e.QueryAllByText(container, "a")
	stats := e.CacheStatsByName()["element_list"]
	if stats.Misses != 1 || stats.Hits != 0 {
		t.Fatalf("after first query: %+v, want 1 miss 0 hits", stats)
	}

	e.QueryAllByText(container, "b")
	stats = e.CacheStatsByName()["element_list"]
	if stats.Misses != 1 || stats.Hits != 1 {
		t.Fatalf("after second query: %+v, want 1 miss 1 hit", stats)
	}
}

func TestElementListCache_DistinctContainers(t *testing.T) {
	e := NewEngine()
	a := parse(t, `<div><p>x</p></div>`)
	b := parse(t, `<div><p>x</p></div>`)

	e.QueryAllByText(a, "x")
	e.QueryAllByText(b, "x")
	stats := e.CacheStatsByName()["element_list"]
	if stats.Misses != 2 || stats.Hits != 0 {
		t.Errorf("identical markup in distinct trees must not share entries: %+v", stats)
	}
}

func TestClearCaches_ResetsEntriesAndStats(t *testing.T) {
	e := NewEngine()
	container := parse(t, `<div><button>go</button></div>`)

	e.QueryAllByRole(container, "button", RoleOptions{})
	e.QueryAllByRole(container, "button", RoleOptions{})
	e.ClearCaches()

	for name, stats := range e.CacheStatsByName() {
		if stats.Hits != 0 || stats.Misses != 0 {
			t.Errorf("%s stats not reset: %+v", name, stats)
		}
	}

	// Next query misses again.
	e.QueryAllByRole(container, "button", RoleOptions{})
	stats := e.CacheStatsByName()["element_list"]
	if stats.Misses != 1 {
		t.Errorf("expected a fresh miss after clear, got %+v", stats)
	}
}

func TestCachingDisabled_BypassesCaches(t *testing.T) {
	e := NewEngine()
	restore := e.CacheScope(false, false)
	defer restore()

	container := parse(t, `<div><button>go</button></div>`)
	e.QueryAllByRole(container, "button", RoleOptions{})
	e.QueryAllByRole(container, "button", RoleOptions{})

	for name, stats := range e.CacheStatsByName() {
		if stats.Hits != 0 || stats.Misses != 0 {
			t.Errorf("%s cache touched while disabled: %+v", name, stats)
		}
	}
}

func TestRoleCache_NegativeCaching(t *testing.T) {
	e := NewEngine()
	container := parse(t, `<div><span>no role</span></div>`)

	// First pass computes and stores the no-role result.
	e.QueryAllByRole(container, "button", RoleOptions{})
	stats := e.CacheStatsByName()["role"]
	if stats.Misses == 0 {
		t.Fatalf("expected role misses on first pass, got %+v", stats)
	}

	// Second pass over the same elements hits the negative entries.
	e.QueryAllByRole(container, "link", RoleOptions{})
	after := e.CacheStatsByName()["role"]
	if after.Hits == 0 {
		t.Errorf("expected role hits on second pass, got %+v", after)
	}
	if after.Misses != stats.Misses {
		t.Errorf("no new role misses expected, got %+v", after)
	}
}

func TestEngineRoleFor_TriState(t *testing.T) {
	e := NewEngine()
	div := parse(t, `<div></div>`).(*dom.Element)
	btn := parse(t, `<button>x</button>`).(*dom.Element)

	if role, ok := e.RoleFor(div); ok {
		t.Errorf("div should have no role, got %q", role)
	}
	if role, ok := e.RoleFor(div); ok {
		t.Errorf("cached no-role answer changed, got %q", role)
	}
	if role, ok := e.RoleFor(btn); !ok || role != "button" {
		t.Errorf("got %q, %v; want button", role, ok)
	}
	if role, ok := e.RoleFor(btn); !ok || role != "button" {
		t.Errorf("cached role answer changed: %q, %v", role, ok)
	}

	stats := e.CacheStatsByName()["role"]
	if stats.Misses != 2 || stats.Hits != 2 {
		t.Errorf("stats = %+v, want 2 misses 2 hits", stats)
	}
}

func TestCacheScope_NestsLikeAStack(t *testing.T) {
	e := NewEngine()

	outer := e.CacheScope(false, false)
	if e.cachingEnabled() {
		t.Fatal("outer scope should disable caching")
	}

	inner := e.CacheScope(true, false)
	if !e.cachingEnabled() {
		t.Fatal("inner scope should re-enable caching")
	}

	inner()
	if e.cachingEnabled() {
		t.Fatal("inner restore should return to outer (disabled)")
	}

	outer()
	if !e.cachingEnabled() {
		t.Fatal("outer restore should return to initial (enabled)")
	}
}

func TestCacheScope_ClearOnExit(t *testing.T) {
	e := NewEngine()
	container := parse(t, `<div><p>x</p></div>`)

	restore := e.CacheScope(true, true)
	e.QueryAllByText(container, "x")
	restore()

	stats := e.CacheStatsByName()["element_list"]
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("caches should be cleared on scope exit, got %+v", stats)
	}
}

func TestEarlyExitResultsNotCached(t *testing.T) {
	e := NewEngine()
	container := parse(t, `<div><p>a</p><p>a</p><p>a</p></div>`)

	// Single-result variants stop matching after two results; the limit must
	// not leak a partial element list into the cache.
	if _, err := e.GetByText(container, "a"); err == nil {
		t.Fatal("expected MultipleFoundError")
	}
	all := e.QueryAllByText(container, "a")
	if len(all) != 3 {
		t.Errorf("expected 3 matches after limited search, got %d", len(all))
	}
}

func TestEngine_ConcurrentQueries(t *testing.T) {
	e := NewEngine()
	container := parse(t, `<ul><li>one</li><li>two</li><li>three</li></ul>`)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if n := len(e.QueryAllByRole(container, "listitem", RoleOptions{})); n != 3 {
					t.Errorf("expected 3 listitems, got %d", n)
					return
				}
			}
		}()
	}
	wg.Wait()
}

package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mj1618/ariatest/aria"
	"github.com/mj1618/ariatest/dom"
)

// RoleOptions refine a role query.
type RoleOptions struct {
	// Level filters headings by level: a matching h{level} tag, or an
	// aria-level attribute equal to Level. Zero means any level. Only
	// meaningful when the queried role is "heading".
	Level int

	// Name filters by case-sensitive substring of the computed accessible
	// name. NamePattern matches anywhere in the name and takes precedence
	// over Name when both are set.
	Name        string
	NamePattern *regexp.Regexp
}

func (o RoleOptions) describe(role string) string {
	desc := fmt.Sprintf("role=%q", role)
	if o.Level > 0 {
		desc += fmt.Sprintf(", level=%d", o.Level)
	}
	if o.NamePattern != nil {
		desc += fmt.Sprintf(", name=/%s/", o.NamePattern)
	} else if o.Name != "" {
		desc += fmt.Sprintf(", name=%q", o.Name)
	}
	return desc
}

func matchesHeadingLevel(el *dom.Element, level int) bool {
	if strings.EqualFold(el.TagName, "h"+strconv.Itoa(level)) {
		return true
	}
	if v, ok := el.Attr("aria-level"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return err == nil && n == level
	}
	return false
}

func (e *Engine) allByRole(container dom.Node, role string, opts RoleOptions, limit int) []*dom.Element {
	var results []*dom.Element
	for _, el := range e.allElements(container, true, 0) {
		elRole, ok := e.RoleFor(el)
		if !ok || elRole != role {
			continue
		}
		if opts.Level > 0 && role == "heading" && !matchesHeadingLevel(el, opts.Level) {
			continue
		}
		if opts.NamePattern != nil || opts.Name != "" {
			name := aria.AccessibleName(el, elRole)
			if opts.NamePattern != nil {
				if !opts.NamePattern.MatchString(name) {
					continue
				}
			} else if !strings.Contains(name, opts.Name) {
				continue
			}
		}
		results = append(results, el)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results
}

// QueryAllByRole returns all elements under container with the given
// computed ARIA role, in document order. Never fails; empty on no match.
func (e *Engine) QueryAllByRole(container dom.Node, role string, opts RoleOptions) []*dom.Element {
	return e.allByRole(container, role, opts, 0)
}

// QueryByRole returns the single matching element, or nil when none match.
// It returns a MultipleFoundError when more than one element matches; it
// does not silently pick the first.
func (e *Engine) QueryByRole(container dom.Node, role string, opts RoleOptions) (*dom.Element, error) {
	elements := e.allByRole(container, role, opts, 2)
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with %s", opts.describe(role)),
			Count: len(elements),
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return elements[0], nil
}

// GetByRole returns the single matching element, failing with NotFoundError
// on zero matches and MultipleFoundError on more than one.
func (e *Engine) GetByRole(container dom.Node, role string, opts RoleOptions) (*dom.Element, error) {
	elements := e.allByRole(container, role, opts, 2)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find element with %s", opts.describe(role))}
	}
	if len(elements) > 1 {
		return nil, &MultipleFoundError{
			Msg:   fmt.Sprintf("found multiple elements with %s", opts.describe(role)),
			Count: len(elements),
		}
	}
	return elements[0], nil
}

// GetAllByRole returns all matching elements, failing with NotFoundError
// when there are none.
func (e *Engine) GetAllByRole(container dom.Node, role string, opts RoleOptions) ([]*dom.Element, error) {
	elements := e.allByRole(container, role, opts, 0)
	if len(elements) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unable to find elements with %s", opts.describe(role))}
	}
	return elements, nil
}

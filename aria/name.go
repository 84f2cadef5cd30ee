package aria

import (
	"strings"

	"github.com/mj1618/ariatest/dom"
)

// AccessibleName computes the accessible name of an element given its
// computed role (empty string when the element has no role). It never fails;
// an empty result means the element has no accessible name.
//
// Precedence: aria-label, then a role-specific rule, then trimmed text
// content, then the title attribute.
func AccessibleName(el *dom.Element, role string) string {
	if label, ok := el.Attr("aria-label"); ok {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			return trimmed
		}
	}

	switch role {
	case "link":
		// Text and href are combined so that href substrings are matchable
		// by name filters. This intentionally diverges from strict WAI-ARIA.
		text := strings.TrimSpace(dom.TextContent(el))
		href, _ := el.Attr("href")
		var parts []string
		if text != "" {
			parts = append(parts, text)
		}
		if href != "" {
			parts = append(parts, href)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}

	case "button":
		if text := strings.TrimSpace(dom.TextContent(el)); text != "" {
			return text
		}

	case "img":
		// alt="" is a valid accessible name and short-circuits.
		if alt, ok := el.Attr("alt"); ok {
			return alt
		}
		if title, ok := el.Attr("title"); ok {
			if trimmed := strings.TrimSpace(title); trimmed != "" {
				return trimmed
			}
		}

	case "textbox", "combobox", "listbox":
		if value, ok := el.Attr("value"); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
		if placeholder, ok := el.Attr("placeholder"); ok {
			if trimmed := strings.TrimSpace(placeholder); trimmed != "" {
				return trimmed
			}
		}
	}

	if text := strings.TrimSpace(dom.TextContent(el)); text != "" {
		return text
	}

	if title, ok := el.Attr("title"); ok {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

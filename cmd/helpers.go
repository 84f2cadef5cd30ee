package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mj1618/ariatest/aria"
	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/query"
	"github.com/spf13/cobra"
)

// ElementInfo is a compact element representation for command output.
type ElementInfo struct {
	Tag   string            `yaml:"tag"             json:"tag"`
	Role  string            `yaml:"role,omitempty"  json:"role,omitempty"`
	Name  string            `yaml:"name,omitempty"  json:"name,omitempty"`
	Text  string            `yaml:"text,omitempty"  json:"text,omitempty"`
	Attrs map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

func elementInfo(el *dom.Element) ElementInfo {
	role, _ := aria.RoleFor(el)
	info := ElementInfo{
		Tag:  el.TagName,
		Role: role,
		Name: aria.AccessibleName(el, role),
		Text: strings.TrimSpace(dom.TextContent(el)),
	}
	if len(el.Attrs) > 0 {
		info.Attrs = make(map[string]string, len(el.Attrs))
		for _, a := range el.Attrs {
			info.Attrs[a.Name] = a.Value
		}
	}
	return info
}

func elementInfos(elements []*dom.Element) []ElementInfo {
	infos := make([]ElementInfo, 0, len(elements))
	for _, el := range elements {
		infos = append(infos, elementInfo(el))
	}
	return infos
}

// addInputFlags registers the document-source flags shared by commands that
// operate on a container.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "HTML file to load ('-' for stdin)")
	cmd.Flags().String("html", "", "Inline HTML markup")
}

// readContainer loads the container from --file or --html. Files are parsed
// as full documents; inline markup as a body fragment.
func readContainer(cmd *cobra.Command) (dom.Node, error) {
	file, _ := cmd.Flags().GetString("file")
	markup, _ := cmd.Flags().GetString("html")

	switch {
	case file != "" && markup != "":
		return nil, fmt.Errorf("specify --file or --html, not both")
	case file == "-":
		return dom.Parse(os.Stdin)
	case file != "":
		return dom.ParseFile(file)
	case markup != "":
		return dom.ParseFragment(markup)
	default:
		return nil, fmt.Errorf("specify --file or --html")
	}
}

// criteria is one query family plus its refinements, built from flags or
// MCP params.
type criteria struct {
	role       string
	level      int
	name       string
	text       string
	label      string
	testID     string
	testIDAttr string
	class      string
	id         string
	tag        string
	attrs      map[string]string
}

// addCriteriaFlags registers the query-family flags shared by query and
// assert.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().String("role", "", "Find elements by computed ARIA role")
	cmd.Flags().Int("level", 0, "Heading level (with --role heading)")
	cmd.Flags().String("name", "", "Accessible-name substring filter (with --role)")
	cmd.Flags().String("text", "", "Find elements by text content substring")
	cmd.Flags().String("label", "", "Find elements by associated label text")
	cmd.Flags().String("test-id", "", "Find elements by test ID")
	cmd.Flags().String("test-id-attribute", "", "Attribute for test-id queries (default: data-testid)")
	cmd.Flags().String("class", "", "Find elements by CSS class token")
	cmd.Flags().String("id", "", "Find element by id attribute")
	cmd.Flags().String("tag", "", "Find elements by tag name")
	cmd.Flags().StringArray("attr", nil, "Attribute filter key=value (with --tag, repeatable; key in_class matches class substring)")
}

func criteriaFromFlags(cmd *cobra.Command) (criteria, error) {
	var c criteria
	c.role, _ = cmd.Flags().GetString("role")
	c.level, _ = cmd.Flags().GetInt("level")
	c.name, _ = cmd.Flags().GetString("name")
	c.text, _ = cmd.Flags().GetString("text")
	c.label, _ = cmd.Flags().GetString("label")
	c.testID, _ = cmd.Flags().GetString("test-id")
	c.testIDAttr, _ = cmd.Flags().GetString("test-id-attribute")
	c.class, _ = cmd.Flags().GetString("class")
	c.id, _ = cmd.Flags().GetString("id")
	c.tag, _ = cmd.Flags().GetString("tag")

	pairs, _ := cmd.Flags().GetStringArray("attr")
	attrs, err := parseAttrPairs(pairs)
	if err != nil {
		return c, err
	}
	c.attrs = attrs
	return c, c.validate()
}

func parseAttrPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --attr %q (expected key=value)", p)
		}
		attrs[k] = v
	}
	return attrs, nil
}

// validate ensures exactly one query family is selected.
func (c criteria) validate() error {
	n := 0
	for _, set := range []bool{
		c.role != "", c.text != "", c.label != "", c.testID != "",
		c.class != "", c.id != "", c.tag != "",
	} {
		if set {
			n++
		}
	}
	if n == 0 {
		return fmt.Errorf("specify one of --role, --text, --label, --test-id, --class, --id, --tag")
	}
	if n > 1 {
		return fmt.Errorf("specify only one query family")
	}
	return nil
}

func (c criteria) describe() string {
	switch {
	case c.role != "":
		desc := fmt.Sprintf("role=%q", c.role)
		if c.level > 0 {
			desc += fmt.Sprintf(", level=%d", c.level)
		}
		if c.name != "" {
			desc += fmt.Sprintf(", name=%q", c.name)
		}
		return desc
	case c.text != "":
		return fmt.Sprintf("text=%q", c.text)
	case c.label != "":
		return fmt.Sprintf("label=%q", c.label)
	case c.testID != "":
		return fmt.Sprintf("test_id=%q", c.testID)
	case c.class != "":
		return fmt.Sprintf("class=%q", c.class)
	case c.id != "":
		return fmt.Sprintf("id=%q", c.id)
	default:
		return fmt.Sprintf("tag=%q", c.tag)
	}
}

// queryAll runs the matching QueryAllBy* operation on the given engine.
func (c criteria) queryAll(e *query.Engine, container dom.Node) []*dom.Element {
	switch {
	case c.role != "":
		return e.QueryAllByRole(container, c.role, query.RoleOptions{Level: c.level, Name: c.name})
	case c.text != "":
		return e.QueryAllByText(container, c.text)
	case c.label != "":
		return e.QueryAllByLabelText(container, c.label)
	case c.testID != "":
		return e.QueryAllByTestID(container, c.testID, query.TestIDOptions{Attribute: c.testIDAttr})
	case c.class != "":
		return e.QueryAllByClass(container, c.class)
	case c.id != "":
		return e.QueryAllByID(container, c.id)
	default:
		return e.QueryAllByTagName(container, c.tag, query.TagOptions{Attrs: c.attrs})
	}
}

// get runs the matching GetBy* operation on the given engine.
func (c criteria) get(e *query.Engine, container dom.Node) (*dom.Element, error) {
	switch {
	case c.role != "":
		return e.GetByRole(container, c.role, query.RoleOptions{Level: c.level, Name: c.name})
	case c.text != "":
		return e.GetByText(container, c.text)
	case c.label != "":
		return e.GetByLabelText(container, c.label)
	case c.testID != "":
		return e.GetByTestID(container, c.testID, query.TestIDOptions{Attribute: c.testIDAttr})
	case c.class != "":
		return e.GetByClass(container, c.class)
	case c.id != "":
		return e.GetByID(container, c.id)
	default:
		return e.GetByTagName(container, c.tag, query.TagOptions{Attrs: c.attrs})
	}
}

// Param helpers for MCP tool arguments. YAML-ish transports may deliver
// numbers as float64 or int64.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

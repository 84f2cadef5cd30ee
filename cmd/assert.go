package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/ariatest/assert"
	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/internal/output"
	"github.com/spf13/cobra"
)

// AssertResult is the YAML output of an assert command.
type AssertResult struct {
	OK     bool   `yaml:"ok"              json:"ok"`
	Action string `yaml:"action"          json:"action"`
	Pass   bool   `yaml:"pass"            json:"pass"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}

var assertCmd = &cobra.Command{
	Use:   "assert",
	Short: "Assert a condition on an HTML document",
	Long: `Check that an element exists with expected properties, or that it
does not exist.

Returns pass/fail with structured output and exit code 0 (pass) or 1 (fail).

Examples:
  ariatest assert --file page.html --role button --name Save
  ariatest assert --file page.html --test-id banner --gone
  ariatest assert --file page.html --all --class item --count 3
  ariatest assert --file page.html --all --role listitem --nth 0 --text-content First`,
	RunE: runAssert,
}

func init() {
	addInputFlags(assertCmd)
	addCriteriaFlags(assertCmd)

	// Property assertions
	assertCmd.Flags().Bool("gone", false, "Assert the element does NOT exist")
	assertCmd.Flags().String("text-content", "", "Assert trimmed text content equals this string")
	assertCmd.Flags().StringArray("expect-attr", nil, "Assert attribute present (key) or equal (key=value), repeatable")

	// List assertions
	assertCmd.Flags().Bool("all", false, "Assert against all matches instead of a single element")
	assertCmd.Flags().Int("count", -1, "Assert the number of matches (with --all)")
	assertCmd.Flags().Int("nth", -1, "Apply element checks to the nth match (with --all)")

	rootCmd.AddCommand(assertCmd)
}

func runAssert(cmd *cobra.Command, args []string) error {
	container, err := readContainer(cmd)
	if err != nil {
		return err
	}
	c, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	flags, err := assertFlagsFrom(cmd)
	if err != nil {
		return err
	}
	chk, err := buildChecker(c, flags)
	if err != nil {
		return err
	}

	result := AssertResult{OK: true, Action: "assert " + c.describe(), Pass: true}
	if err := chk.Check(container); err != nil {
		result.OK = false
		result.Pass = false
		result.Error = err.Error()
	}

	if result.Pass {
		return output.Print(result)
	}
	_ = output.Print(result)
	return fmt.Errorf("assert failed: %s", result.Error)
}

type expectAttr struct {
	name  string
	value []string
}

type assertFlags struct {
	gone           bool
	textContent    string
	hasTextContent bool
	attrs          []expectAttr
	all            bool
	count          int
	nth            int
}

func assertFlagsFrom(cmd *cobra.Command) (assertFlags, error) {
	var f assertFlags
	f.gone, _ = cmd.Flags().GetBool("gone")
	f.textContent, _ = cmd.Flags().GetString("text-content")
	f.hasTextContent = cmd.Flags().Changed("text-content")
	f.all, _ = cmd.Flags().GetBool("all")
	f.count, _ = cmd.Flags().GetInt("count")
	f.nth, _ = cmd.Flags().GetInt("nth")

	if !f.all && (f.count >= 0 || f.nth >= 0) {
		return f, fmt.Errorf("--count and --nth require --all")
	}

	pairs, _ := cmd.Flags().GetStringArray("expect-attr")
	for _, p := range pairs {
		k, v, found := strings.Cut(p, "=")
		if k == "" {
			return f, fmt.Errorf("invalid --expect-attr %q", p)
		}
		if found {
			f.attrs = append(f.attrs, expectAttr{name: k, value: []string{v}})
		} else {
			f.attrs = append(f.attrs, expectAttr{name: k})
		}
	}
	return f, nil
}

// checker is what every assertion builder satisfies once configured.
type checker interface {
	Check(container dom.Node) error
}

// elementAssertion abstracts the shared chaining methods of the single
// builders, which are value receivers returning their own type.
type elementAssertion[T any] interface {
	Not() T
	TextContent(s string) T
	WithAttribute(name string, value ...string) T
	Check(container dom.Node) error
}

// listAssertion adds the list-only refinements.
type listAssertion[T any] interface {
	elementAssertion[T]
	Count(n int) T
	Nth(n int) T
}

func applyElementFlags[T elementAssertion[T]](b T, f assertFlags) T {
	if f.gone {
		b = b.Not()
	}
	if f.hasTextContent {
		b = b.TextContent(f.textContent)
	}
	for _, a := range f.attrs {
		b = b.WithAttribute(a.name, a.value...)
	}
	return b
}

func applyListFlags[T listAssertion[T]](b T, f assertFlags) T {
	b = applyElementFlags[T](b, f)
	if f.count >= 0 {
		b = b.Count(f.count)
	}
	if f.nth >= 0 {
		b = b.Nth(f.nth)
	}
	return b
}

// buildChecker constructs the assertion builder matching the criteria and
// applies the property and list flags to it.
func buildChecker(c criteria, f assertFlags) (checker, error) {
	if f.all {
		switch {
		case c.role != "":
			return applyListFlags(assert.AllByRole{Role: c.role, Level: c.level, Name: c.name}, f), nil
		case c.text != "":
			return applyListFlags(assert.AllByText{Text: c.text}, f), nil
		case c.label != "":
			return applyListFlags(assert.AllByLabelText{Label: c.label}, f), nil
		case c.testID != "":
			return applyListFlags(assert.AllByTestID{TestID: c.testID, Attribute: c.testIDAttr}, f), nil
		case c.class != "":
			return applyListFlags(assert.AllByClass{Class: c.class}, f), nil
		case c.id != "":
			return nil, fmt.Errorf("--all is not supported with --id")
		default:
			return applyListFlags(assert.AllByTagName{TagName: c.tag, Attrs: c.attrs}, f), nil
		}
	}

	switch {
	case c.role != "":
		return applyElementFlags(assert.ByRole{Role: c.role, Level: c.level, Name: c.name}, f), nil
	case c.text != "":
		return applyElementFlags(assert.ByText{Text: c.text}, f), nil
	case c.label != "":
		return applyElementFlags(assert.ByLabelText{Label: c.label}, f), nil
	case c.testID != "":
		return applyElementFlags(assert.ByTestID{TestID: c.testID, Attribute: c.testIDAttr}, f), nil
	case c.class != "":
		return applyElementFlags(assert.ByClass{Class: c.class}, f), nil
	case c.id != "":
		return applyElementFlags(assert.ByID{ID: c.id}, f), nil
	default:
		return applyElementFlags(assert.ByTagName{TagName: c.tag, Attrs: c.attrs}, f), nil
	}
}

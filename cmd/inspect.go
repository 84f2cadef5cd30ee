package cmd

import (
	"strings"

	"github.com/mj1618/ariatest/aria"
	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/internal/output"
	"github.com/spf13/cobra"
)

// TreeNode is one element in the annotated accessibility tree.
type TreeNode struct {
	Tag      string     `yaml:"tag"                json:"tag"`
	Role     string     `yaml:"role,omitempty"     json:"role,omitempty"`
	Name     string     `yaml:"name,omitempty"     json:"name,omitempty"`
	Children []TreeNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// InspectResult holds the inspect command's output.
type InspectResult struct {
	OK   bool       `yaml:"ok"   json:"ok"`
	Tree []TreeNode `yaml:"tree" json:"tree"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the annotated accessibility tree of a document",
	Long: `Print the element tree of an HTML document annotated with each
element's computed ARIA role and accessible name.

Examples:
  ariatest inspect --file page.html
  ariatest inspect --html '<nav><a href="/x">Home</a></nav>'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := readContainer(cmd)
		if err != nil {
			return err
		}
		rolesOnly, _ := cmd.Flags().GetBool("roles-only")
		return output.Print(InspectResult{OK: true, Tree: buildTree(container, rolesOnly)})
	},
}

// buildTree converts element children of n into annotated tree nodes. With
// rolesOnly, elements without a computed role are skipped and their children
// are promoted in their place.
func buildTree(n dom.Node, rolesOnly bool) []TreeNode {
	var children []dom.Node
	switch t := n.(type) {
	case *dom.Element:
		children = t.Children
	case *dom.Fragment:
		children = t.Children
	default:
		return nil
	}

	var nodes []TreeNode
	for _, child := range children {
		el, ok := child.(*dom.Element)
		if !ok {
			continue
		}
		role, hasRole := aria.RoleFor(el)
		if rolesOnly && !hasRole {
			nodes = append(nodes, buildTree(el, rolesOnly)...)
			continue
		}
		node := TreeNode{
			Tag:      el.TagName,
			Role:     role,
			Children: buildTree(el, rolesOnly),
		}
		if hasRole {
			node.Name = strings.TrimSpace(aria.AccessibleName(el, role))
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func init() {
	addInputFlags(inspectCmd)
	inspectCmd.Flags().Bool("roles-only", false, "Only show elements with a computed role")
	rootCmd.AddCommand(inspectCmd)
}

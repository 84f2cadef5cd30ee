package cmd

import (
	"github.com/mj1618/ariatest/internal/output"
	"github.com/mj1618/ariatest/query"
	"github.com/spf13/cobra"
)

// QueryResult holds the query command's output.
type QueryResult struct {
	OK      bool          `yaml:"ok"                json:"ok"`
	Action  string        `yaml:"action"            json:"action"`
	Total   int           `yaml:"total"             json:"total"`
	Matches []ElementInfo `yaml:"matches,omitempty" json:"matches,omitempty"`
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Find elements in an HTML document",
	Long: `Find elements in an HTML document by role, text, label, test ID,
class, id, or tag name. Prints all matches.

Examples:
  ariatest query --file page.html --role button
  ariatest query --file page.html --role heading --level 2
  ariatest query --html '<button>Save</button>' --text Save
  cat page.html | ariatest query --file - --tag input --attr type=email`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := readContainer(cmd)
		if err != nil {
			return err
		}
		c, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}

		matches := c.queryAll(query.Default(), container)
		return output.Print(QueryResult{
			OK:      true,
			Action:  "query " + c.describe(),
			Total:   len(matches),
			Matches: elementInfos(matches),
		})
	},
}

func init() {
	addInputFlags(queryCmd)
	addCriteriaFlags(queryCmd)
	rootCmd.AddCommand(queryCmd)
}

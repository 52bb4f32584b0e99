package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

// Names may contain spaces (they become directory names and link text) but
// never path separators, and may not start with a dot.
var namePattern = regexp.MustCompile(`^[^./\\][^/\\]*$`)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Scaffold and track a new notebook project",
	Long: `Create a sub-directory named <name> containing a templated notebook
(<name>.ipynb) credited to the configured author, and record it in the
sidecar's contents list.

Example:
  beacon create "gradient descent"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateName(name); err != nil {
			return err
		}

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		return ws.manager(nil).Create(name)
	},
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must not contain path separators or start with a dot", name)
	}
	return nil
}

package cli

import (
	"github.com/beacon-labs/beacon/internal/collection"
	"github.com/spf13/cobra"
)

var removeYes bool

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a tracked notebook project",
	Long: `Delete the directory of a tracked project and drop it from the sidecar's
contents list. Prompts for confirmation unless --yes is set; declining
leaves everything unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		confirm := stdinConfirm(false)
		if removeYes {
			confirm = collection.AutoConfirm
		}
		return ws.manager(confirm).Remove(args[0])
	},
}

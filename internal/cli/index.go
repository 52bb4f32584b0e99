package cli

import (
	"github.com/beacon-labs/beacon/internal/collection"
	"github.com/beacon-labs/beacon/internal/index"
	"github.com/spf13/cobra"
)

var (
	indexLogo bool
	indexYes  bool
)

func init() {
	indexCmd.Flags().BoolVar(&indexLogo, "logo", false, "Also write the static logo asset if absent")
	indexCmd.Flags().BoolVarP(&indexYes, "yes", "y", false, "Skip the overwrite prompt")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:     "index",
	Aliases: []string{"readme"},
	Short:   "Generate the README index of tracked projects",
	Long: `Write README.md in the current directory: a title, an author credit, and
one viewer link per tracked project. An existing README prompts before being
overwritten; declining leaves it untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		confirm := stdinConfirm(true)
		if indexYes {
			confirm = collection.AutoConfirm
		}
		_, err = index.Generate(ws.root, &ws.cfg, confirm, indexLogo)
		return err
	},
}

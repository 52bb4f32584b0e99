package cli

import (
	"fmt"
	"os"

	"github.com/beacon-labs/beacon/internal/collection"
	"github.com/beacon-labs/beacon/internal/config"
	"github.com/spf13/cobra"
)

var initName string

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Collection name (default: placeholder)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a fresh sidecar for the current directory",
	Long: `Create the sidecar file in the current directory with placeholder identity,
seeded from the global defaults file when present. Other commands create the
sidecar lazily on first mutation; init makes it explicit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		sidecar := collection.SidecarPath(root)
		if collection.Exists(sidecar) {
			return fmt.Errorf("already initialized: %s exists", sidecar)
		}

		cfg := collection.Default()
		config.Load()
		config.Seed(&cfg)
		if initName != "" {
			cfg.Name = initName
		}

		if err := cfg.Save(sidecar); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", sidecar)
		return nil
	},
}

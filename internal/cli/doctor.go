package cli

import (
	"fmt"

	"github.com/beacon-labs/beacon/internal/collection"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Prune tracked entries whose directories are gone")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the sidecar against the directory tree",
	Long: `Compare the sidecar's contents list with the sub-directories actually on
disk. Reports tracked entries whose directory is missing and directories that
are not tracked. With --fix, missing entries are pruned from the sidecar.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		report, err := collection.Verify(ws.root, &ws.cfg)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", ws.root, err)
		}

		fmt.Fprintln(out, "Collection check:")
		if report.Clean() {
			fmt.Fprintf(out, "  [ OK ] %d tracked project(s) match the directory tree\n", len(ws.cfg.Contents))
			return nil
		}

		for _, name := range report.Missing {
			fmt.Fprintf(out, "  [MISS] %s is tracked but has no directory\n", name)
		}
		for _, name := range report.Untracked {
			fmt.Fprintf(out, "  [WARN] %s exists but is not tracked\n", name)
		}

		if doctorFix {
			pruned, err := ws.manager(nil).Prune(report)
			if err != nil {
				return err
			}
			for _, name := range pruned {
				fmt.Fprintf(out, "  [FIX ] Pruned %s from the sidecar\n", name)
			}
		} else if len(report.Missing) > 0 {
			fmt.Fprintln(out, "         Run 'beacon doctor --fix' to prune missing entries")
		}
		return nil
	},
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/beacon-labs/beacon/internal/notebook"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one tracked project for display.
type listEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Notebook string `json:"notebook"`
	Status   string `json:"status"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked notebook projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		if len(ws.cfg.Contents) == 0 && !listJSON {
			fmt.Fprintln(cmd.OutOrStdout(), "No projects tracked yet.")
			return nil
		}

		entries := make([]listEntry, 0, len(ws.cfg.Contents))
		for _, name := range ws.cfg.Contents {
			entry := listEntry{
				Name:     name,
				Path:     name,
				Notebook: filepath.Join(name, notebook.FileName(name)),
				Status:   "ok",
			}
			if _, statErr := os.Stat(filepath.Join(ws.root, name)); statErr != nil {
				entry.Status = "missing"
			}
			entries = append(entries, entry)
		}

		if listJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling list: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTATUS\tNOTEBOOK")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Status, e.Notebook)
		}
		return w.Flush()
	},
}

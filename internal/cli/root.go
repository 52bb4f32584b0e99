// Package cli defines the cobra command tree for the beacon binary.
package cli

import (
	"fmt"
	"os"

	"github.com/beacon-labs/beacon/internal/branding"
	"github.com/beacon-labs/beacon/internal/collection"
	"github.com/beacon-labs/beacon/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` maintains a directory of notebook projects: it scaffolds
tracked sub-directories with templated notebooks, keeps their names in a JSON
sidecar file, and renders a README index of viewer links.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
// Failures are reported as a single line on stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// workspace is the per-invocation view of the current collection directory.
type workspace struct {
	root    string
	sidecar string
	cfg     collection.Config
}

// openWorkspace loads (or defaults) the sidecar for the current directory.
// A fresh config is seeded from the global defaults file.
func openWorkspace() (*workspace, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	sidecar := collection.SidecarPath(root)
	fresh := !collection.Exists(sidecar)

	cfg, err := collection.Load(sidecar)
	if err != nil {
		return nil, err
	}
	if fresh {
		config.Load()
		config.Seed(&cfg)
	}

	return &workspace{root: root, sidecar: sidecar, cfg: cfg}, nil
}

// manager wires a content manager for the workspace with the given
// confirmation behavior.
func (w *workspace) manager(confirm collection.ConfirmFunc) *collection.Manager {
	return collection.NewManager(w.root, &w.cfg, confirm)
}

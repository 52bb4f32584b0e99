// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's
// //go:embed bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	SidecarFile   string `yaml:"sidecar_file"`
	ViewerHost    string `yaml:"viewer_host"`
	DefaultName   string `yaml:"default_name"`
	DefaultAuthor string `yaml:"default_author"`
	DefaultEmail  string `yaml:"default_email"`
	GoModule      string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "beacon",
			DisplayName:   "Beacon",
			Description:   "Scaffolding tool for notebook project collections",
			HomeDir:       ".beacon",
			EnvPrefix:     "BEACON",
			SidecarFile:   ".beaconrc.json",
			ViewerHost:    "nbviewer.jupyter.org",
			DefaultName:   "BEACON",
			DefaultAuthor: "Author Name",
			DefaultEmail:  "author@email.com",
			GoModule:      "github.com/beacon-labs/beacon",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "beacon").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Beacon").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".beacon").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BEACON").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// SidecarFile returns the per-collection sidecar filename (e.g., ".beaconrc.json").
func SidecarFile() string { load(); return defaults.SidecarFile }

// ViewerHost returns the notebook viewer host used in index links.
func ViewerHost() string { load(); return defaults.ViewerHost }

// DefaultName returns the placeholder collection name for new sidecars.
func DefaultName() string { load(); return defaults.DefaultName }

// DefaultAuthor returns the placeholder author name for new sidecars.
func DefaultAuthor() string { load(); return defaults.DefaultAuthor }

// DefaultEmail returns the placeholder author email for new sidecars.
func DefaultEmail() string { load(); return defaults.DefaultEmail }

// GoModule returns the Go module path. Used by rebranding scripts,
// not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "BEACON_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

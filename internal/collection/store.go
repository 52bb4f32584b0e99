package collection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/beacon-labs/beacon/internal/branding"
)

// SidecarPath returns the path of the sidecar file for a collection root.
func SidecarPath(root string) string {
	return filepath.Join(root, branding.SidecarFile())
}

// Exists reports whether a sidecar file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the sidecar at path. A missing file is not an error: Load returns
// a fresh default config so first runs work in any directory. A present file
// is schema-validated before decoding; contents are deduplicated and sorted.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading sidecar %s: %w", path, err)
	}

	result, err := ValidateSidecar(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidSidecar, path, err)
	}
	if !result.Valid {
		return Config{}, fmt.Errorf("%w: %s: %s", ErrInvalidSidecar, path, result.Summary())
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidSidecar, path, err)
	}

	if err := checkFormatVersion(cfg.Version); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidSidecar, path, err)
	}

	cfg.Contents = normalizeContents(cfg.Contents)
	return cfg, nil
}

// Save serializes the full config as indented JSON, overwriting path entirely.
// There is no partial merge and no auto-save; callers invoke Save after every
// mutation that should persist.
func (c *Config) Save(path string) error {
	if c.Version == "" {
		c.Version = FormatVersion
	}
	if c.Contents == nil {
		c.Contents = []string{}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sidecar: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing sidecar %s: %w", path, err)
	}
	return nil
}

// checkFormatVersion refuses sidecars written by a newer major format version.
// An empty version is treated as the current format.
func checkFormatVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing sidecar version %q: %w", version, err)
	}
	supported := semver.MustParse(FormatVersion)
	if v.Major() > supported.Major() {
		return fmt.Errorf("sidecar version %s is newer than supported %s", version, FormatVersion)
	}
	return nil
}

// normalizeContents sorts the list and drops duplicates and empty names.
func normalizeContents(contents []string) []string {
	seen := make(map[string]bool, len(contents))
	out := make([]string, 0, len(contents))
	for _, name := range contents {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

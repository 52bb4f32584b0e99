package collection

import (
	"os"
	"path/filepath"
	"strings"
)

// Report is the outcome of reconciling the sidecar against the filesystem.
type Report struct {
	Missing   []string // tracked in the sidecar, directory gone
	Untracked []string // directory present, not in the sidecar
}

// Clean reports whether the sidecar and the filesystem agree.
func (r *Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Untracked) == 0
}

// Verify compares the tracked contents against the directories under root.
// Hidden directories are ignored; files are never considered contents.
func Verify(root string, cfg *Config) (*Report, error) {
	report := &Report{}

	for _, name := range cfg.Contents {
		if _, err := os.Stat(filepath.Join(root, name)); os.IsNotExist(err) {
			report.Missing = append(report.Missing, name)
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !cfg.Tracked(entry.Name()) {
			report.Untracked = append(report.Untracked, entry.Name())
		}
	}

	return report, nil
}

// Prune drops every missing entry from the contents list and saves the
// sidecar. It returns the pruned names.
func (m *Manager) Prune(report *Report) ([]string, error) {
	if len(report.Missing) == 0 {
		return nil, nil
	}
	for _, name := range report.Missing {
		m.Config.Untrack(name)
	}
	if err := m.Config.Save(m.Sidecar); err != nil {
		return nil, err
	}
	return report.Missing, nil
}

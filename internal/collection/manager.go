package collection

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beacon-labs/beacon/internal/notebook"
)

// Manager performs content operations against one collection root. It holds
// no state of its own beyond the loaded config; persistence is explicit
// through the sidecar path.
type Manager struct {
	Root    string  // collection root directory
	Sidecar string  // sidecar path, usually SidecarPath(Root)
	Config  *Config // loaded sidecar config, mutated in place
	Confirm ConfirmFunc
}

// NewManager wires a manager for root with an injected confirmation func.
func NewManager(root string, cfg *Config, confirm ConfirmFunc) *Manager {
	return &Manager{
		Root:    root,
		Sidecar: SidecarPath(root),
		Config:  cfg,
		Confirm: confirm,
	}
}

// Create makes a new tracked project: a directory named name containing a
// templated notebook, recorded in the sidecar. If the directory already
// exists nothing changes, on disk or in the sidecar.
func (m *Manager) Create(name string) error {
	dir := filepath.Join(m.Root, name)

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%s: %w", dir, ErrExists)
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	_, err := notebook.Write(dir, notebook.Data{
		Title:  name,
		Author: m.Config.Author,
		Email:  m.Config.AuthorEmail,
	})
	if err != nil {
		// Roll back the directory so a failed create leaves no trace.
		os.RemoveAll(dir)
		return err
	}

	m.Config.Track(name)
	return m.Config.Save(m.Sidecar)
}

// Remove deletes a tracked project after confirmation. Unknown names fail
// with ErrNotTracked before any prompt; a declined prompt is a clean no-op.
func (m *Manager) Remove(name string) error {
	if !m.Config.Tracked(name) {
		return fmt.Errorf("%s: %w", name, ErrNotTracked)
	}

	ok, err := m.Confirm(fmt.Sprintf("Remove %s? (y/N) ", name))
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		return nil
	}

	if err := os.RemoveAll(filepath.Join(m.Root, name)); err != nil {
		return fmt.Errorf("removing %s: %w", name, err)
	}

	m.Config.Untrack(name)
	return m.Config.Save(m.Sidecar)
}

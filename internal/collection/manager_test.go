package collection

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func answer(yes bool) ConfirmFunc {
	return func(string) (bool, error) { return yes, nil }
}

func newTestManager(t *testing.T, confirm ConfirmFunc) *Manager {
	t.Helper()
	root := t.TempDir()
	cfg := Default()
	cfg.Name = "Proj"
	if err := cfg.Save(SidecarPath(root)); err != nil {
		t.Fatalf("saving initial sidecar: %v", err)
	}
	return NewManager(root, &cfg, confirm)
}

func TestCreateThenRemoveRestoresPriorState(t *testing.T) {
	m := newTestManager(t, answer(true))
	before := m.Config.Contents

	if err := m.Create("alpha"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	dir := filepath.Join(m.Root, "alpha")
	if _, err := os.Stat(filepath.Join(dir, "alpha.ipynb")); err != nil {
		t.Fatalf("notebook not written: %v", err)
	}
	if !m.Config.Tracked("alpha") {
		t.Fatal("alpha not tracked after Create")
	}

	if err := m.Remove("alpha"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("directory still present after Remove: %v", err)
	}
	if !reflect.DeepEqual(m.Config.Contents, before) {
		t.Errorf("Contents = %v, want %v", m.Config.Contents, before)
	}

	// The persisted sidecar must agree.
	loaded, err := Load(m.Sidecar)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded.Contents, before) {
		t.Errorf("persisted Contents = %v, want %v", loaded.Contents, before)
	}
}

func TestCreateOverExistingDirectoryLeavesSidecarUntouched(t *testing.T) {
	m := newTestManager(t, answer(true))
	if err := os.Mkdir(filepath.Join(m.Root, "taken"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	before, err := os.ReadFile(m.Sidecar)
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}

	err = m.Create("taken")
	if !errors.Is(err, ErrExists) {
		t.Fatalf("Create() error = %v, want ErrExists", err)
	}

	after, err := os.ReadFile(m.Sidecar)
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("sidecar bytes changed on failed Create")
	}
	if m.Config.Tracked("taken") {
		t.Error("failed Create still tracked the name")
	}
}

func TestCreateKeepsContentsSorted(t *testing.T) {
	m := newTestManager(t, answer(true))
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := m.Create(name); err != nil {
			t.Fatalf("Create(%q) error: %v", name, err)
		}
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(m.Config.Contents, want) {
		t.Errorf("Contents = %v, want %v", m.Config.Contents, want)
	}
}

func TestRemoveUnknownNameFailsWithoutPrompt(t *testing.T) {
	prompted := false
	m := newTestManager(t, func(string) (bool, error) {
		prompted = true
		return true, nil
	})

	err := m.Remove("ghost")
	if !errors.Is(err, ErrNotTracked) {
		t.Fatalf("Remove() error = %v, want ErrNotTracked", err)
	}
	if prompted {
		t.Error("Remove prompted for an untracked name")
	}
}

func TestRemoveDeclinedChangesNothing(t *testing.T) {
	m := newTestManager(t, answer(false))
	if err := m.Create("alpha"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	before, err := os.ReadFile(m.Sidecar)
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}

	if err := m.Remove("alpha"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(m.Root, "alpha")); err != nil {
		t.Errorf("directory removed despite declined prompt: %v", err)
	}
	after, err := os.ReadFile(m.Sidecar)
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("sidecar changed despite declined prompt")
	}
}

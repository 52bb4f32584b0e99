package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beacon-labs/beacon/internal/collection"
)

func testConfig() *collection.Config {
	return &collection.Config{
		Name:           "Proj",
		Author:         "A",
		AuthorEmail:    "a@example.com",
		AuthorGithubID: "octo",
		Contents:       []string{"alpha", "beta two"},
	}
}

func TestLinkEscapesPathSegments(t *testing.T) {
	got := Link(testConfig(), "beta two")
	want := "https://nbviewer.jupyter.org/github/octo/Proj/blob/master/beta%20two/beta%20two.ipynb"
	if got != want {
		t.Errorf("Link = %q, want %q", got, want)
	}
}

func TestRenderFormat(t *testing.T) {
	out := Render(testConfig())

	if !strings.HasPrefix(out, "# Proj\nAuthor: A (a@example.com)\n\n## Contents\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	// Escaped URL, literal link text.
	if !strings.Contains(out, "- [beta two](https://nbviewer.jupyter.org/github/octo/Proj/blob/master/beta%20two/beta%20two.ipynb)") {
		t.Errorf("missing escaped beta two link:\n%s", out)
	}
	if !strings.Contains(out, "- [alpha](https://nbviewer.jupyter.org/github/octo/Proj/blob/master/alpha/alpha.ipynb)") {
		t.Errorf("missing alpha link:\n%s", out)
	}

	// Contents order is preserved.
	if strings.Index(out, "[alpha]") > strings.Index(out, "[beta two]") {
		t.Error("links not in contents order")
	}
}

func TestGenerateWritesFreshIndex(t *testing.T) {
	root := t.TempDir()

	wrote, err := Generate(root, testConfig(), collection.AutoConfirm, false)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !wrote {
		t.Fatal("Generate did not write")
	}
	if _, err := os.Stat(filepath.Join(root, FileName)); err != nil {
		t.Errorf("README not written: %v", err)
	}
}

func TestGenerateDeclinedLeavesExistingIndexUntouched(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	original := []byte("hand-written readme\n")
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatalf("writing existing README: %v", err)
	}

	decline := func(string) (bool, error) { return false, nil }
	wrote, err := Generate(root, testConfig(), decline, false)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if wrote {
		t.Error("Generate reported a write despite declined prompt")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading README: %v", err)
	}
	if string(after) != string(original) {
		t.Errorf("README changed: %q", after)
	}
}

func TestGenerateWritesLogoOnce(t *testing.T) {
	root := t.TempDir()

	if _, err := Generate(root, testConfig(), collection.AutoConfirm, true); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	logoPath := filepath.Join(root, LogoFileName)
	first, err := os.ReadFile(logoPath)
	if err != nil {
		t.Fatalf("logo not written: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("logo is empty")
	}

	// An existing logo is never overwritten.
	if err := os.WriteFile(logoPath, []byte("custom"), 0644); err != nil {
		t.Fatalf("writing custom logo: %v", err)
	}
	if _, err := Generate(root, testConfig(), collection.AutoConfirm, true); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	after, err := os.ReadFile(logoPath)
	if err != nil {
		t.Fatalf("reading logo: %v", err)
	}
	if string(after) != "custom" {
		t.Error("existing logo was overwritten")
	}
}

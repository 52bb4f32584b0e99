// Package index renders the collection README: a title, an author credit,
// and one viewer link per tracked project.
package index

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/beacon-labs/beacon/internal/branding"
	"github.com/beacon-labs/beacon/internal/collection"
	"github.com/beacon-labs/beacon/internal/notebook"
)

const (
	// FileName is the generated index document.
	FileName = "README.md"

	// LogoFileName is the optional static asset written next to the index.
	LogoFileName = "logo.svg"
)

//go:embed assets/logo.svg
var assets embed.FS

// Link builds the viewer URL for one tracked project. Every path segment is
// percent-escaped, so a name like "beta two" links to .../beta%20two/beta%20two.ipynb
// while the link text stays literal.
func Link(cfg *collection.Config, name string) string {
	return fmt.Sprintf("https://%s/github/%s/%s/blob/master/%s/%s",
		branding.ViewerHost(),
		url.PathEscape(cfg.AuthorGithubID),
		url.PathEscape(cfg.Name),
		url.PathEscape(name),
		url.PathEscape(notebook.FileName(name)))
}

// Render produces the full index document in the config's content order.
func Render(cfg *collection.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", cfg.Name)
	fmt.Fprintf(&b, "Author: %s (%s)\n", cfg.Author, cfg.AuthorEmail)
	b.WriteString("\n## Contents\n")
	for _, name := range cfg.Contents {
		fmt.Fprintf(&b, "- [%s](%s)\n", name, Link(cfg, name))
	}
	return b.String()
}

// Generate writes the index document under root. An existing README triggers
// the confirmation prompt; declining leaves the file untouched and returns
// wrote=false with no error. With logo set, the embedded asset is also
// written if absent.
func Generate(root string, cfg *collection.Config, confirm collection.ConfirmFunc, logo bool) (wrote bool, err error) {
	path := filepath.Join(root, FileName)

	if _, statErr := os.Stat(path); statErr == nil {
		ok, confirmErr := confirm(fmt.Sprintf("%s already exists. Overwrite? (Y/n) ", FileName))
		if confirmErr != nil {
			return false, fmt.Errorf("reading confirmation: %w", confirmErr)
		}
		if !ok {
			return false, nil
		}
	}

	if err := os.WriteFile(path, []byte(Render(cfg)), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	if logo {
		if err := writeLogo(root); err != nil {
			return true, err
		}
	}
	return true, nil
}

// writeLogo writes the embedded logo asset if no file of that name exists.
func writeLogo(root string) error {
	path := filepath.Join(root, LogoFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := assets.ReadFile("assets/" + LogoFileName)
	if err != nil {
		return fmt.Errorf("reading embedded logo: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

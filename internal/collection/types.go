package collection

import (
	"sort"

	"github.com/beacon-labs/beacon/internal/branding"
)

// FormatVersion is the sidecar format version this binary reads and writes.
// Load refuses sidecars whose major version is newer.
const FormatVersion = "1.0.0"

// Config is the parsed sidecar for one collection directory.
type Config struct {
	Name           string   `json:"name"`
	Author         string   `json:"author"`
	AuthorEmail    string   `json:"author_email"`
	AuthorGithubID string   `json:"author_github_id"`
	Contents       []string `json:"contents"`
	Version        string   `json:"version,omitempty"`
}

// ConfirmFunc answers an interactive yes/no prompt. Implementations may read
// stdin, consult a flag, or return a canned answer in tests.
type ConfirmFunc func(prompt string) (bool, error)

// AutoConfirm answers every prompt affirmatively. Used by --yes flags.
func AutoConfirm(string) (bool, error) { return true, nil }

// Default returns a fresh config with placeholder identity and no contents.
func Default() Config {
	return Config{
		Name:        branding.DefaultName(),
		Author:      branding.DefaultAuthor(),
		AuthorEmail: branding.DefaultEmail(),
		Contents:    []string{},
		Version:     FormatVersion,
	}
}

// Update applies non-nil identity overrides. Name and Contents are never
// touched here.
func (c *Config) Update(author, email, githubID *string) {
	if author != nil {
		c.Author = *author
	}
	if email != nil {
		c.AuthorEmail = *email
	}
	if githubID != nil {
		c.AuthorGithubID = *githubID
	}
}

// Tracked reports whether name is in the contents list.
func (c *Config) Tracked(name string) bool {
	for _, n := range c.Contents {
		if n == name {
			return true
		}
	}
	return false
}

// Track adds name to the contents list, keeping it sorted and duplicate-free.
func (c *Config) Track(name string) {
	if c.Tracked(name) {
		return
	}
	c.Contents = append(c.Contents, name)
	sort.Strings(c.Contents)
}

// Untrack removes name from the contents list. Unknown names are a no-op.
func (c *Config) Untrack(name string) {
	kept := c.Contents[:0]
	for _, n := range c.Contents {
		if n != name {
			kept = append(kept, n)
		}
	}
	c.Contents = kept
}

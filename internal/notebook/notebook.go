// Package notebook generates nbformat v4 Jupyter notebook documents for
// freshly scaffolded projects: one markdown title cell rendered from a
// template, followed by one empty code cell.
package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Ext is the file extension of generated notebook documents.
const Ext = ".ipynb"

// headerTmpl renders the markdown title cell.
var headerTmpl = template.Must(template.New("header").Parse(
	"# {{.Title}}\nAuthor: {{.Author}} ({{.Email}})"))

// Data holds the template variables for a new notebook.
type Data struct {
	Title  string // base name of the project directory
	Author string
	Email  string
}

// nbformat v4 document shape. Cells is heterogeneous: markdown cells carry no
// execution_count or outputs, code cells must serialize both even when empty.
type document struct {
	Cells         []any    `json:"cells"`
	Metadata      struct{} `json:"metadata"`
	NBFormat      int      `json:"nbformat"`
	NBFormatMinor int      `json:"nbformat_minor"`
}

type markdownCell struct {
	CellType string   `json:"cell_type"`
	Metadata struct{} `json:"metadata"`
	Source   []string `json:"source"`
}

type codeCell struct {
	CellType       string   `json:"cell_type"`
	ExecutionCount *int     `json:"execution_count"`
	Metadata       struct{} `json:"metadata"`
	Outputs        []any    `json:"outputs"`
	Source         []string `json:"source"`
}

// FileName returns the notebook filename for a project title.
func FileName(title string) string {
	return title + Ext
}

// Marshal renders the notebook document for d as indented nbformat JSON.
func Marshal(d Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := headerTmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("executing header template: %w", err)
	}

	doc := document{
		Cells: []any{
			markdownCell{
				CellType: "markdown",
				Source:   sourceLines(buf.String()),
			},
			codeCell{
				CellType: "code",
				Outputs:  []any{},
				Source:   []string{},
			},
		},
		NBFormat:      4,
		NBFormatMinor: 5,
	}

	data, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return nil, fmt.Errorf("marshaling notebook: %w", err)
	}
	return append(data, '\n'), nil
}

// Write generates <dir>/<title>.ipynb for d and returns the written path.
func Write(dir string, d Data) (string, error) {
	data, err := Marshal(d)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(d.Title))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing notebook %s: %w", path, err)
	}
	return path, nil
}

// sourceLines splits text into the nbformat source representation: one entry
// per line, each but the last keeping its trailing newline.
func sourceLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Package report renders stored changelog entries into a static HTML
// document and keeps a report file in sync with the store via a watcher.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

//go:embed report.html.tmpl
var reportTemplate string

// DefaultTitle is used when no report title is configured.
const DefaultTitle = "Project Changelog"

// Options controls report rendering.
type Options struct {
	// Title is the report heading. Empty means DefaultTitle.
	Title string
}

// RenderError is returned when a malformed entry is encountered while
// rendering. The wrapped error describes which invariant was violated.
type RenderError struct {
	ID  string
	Err error
}

func (e *RenderError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("rendering entry: %v", e.Err)
	}
	return fmt.Sprintf("rendering entry %s: %v", e.ID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// templateData is the root object passed to the HTML template.
type templateData struct {
	Title   string
	Entries []entryView
}

// entryView is a single entry prepared for display.
type entryView struct {
	ChangeType  string
	Class       string
	Description string
	Date        string
}

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Render produces the full HTML report for the given entries, newest first.
// It has no side effects and is deterministic for a given input sequence.
// User-supplied text is escaped by html/template's contextual autoescaping.
// An empty entry list renders a valid empty report.
func Render(entries []changelog.Entry, opts Options) (string, error) {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	data := templateData{Title: title}

	for _, e := range changelog.SortedNewestFirst(entries) {
		if err := e.Validate(); err != nil {
			return "", &RenderError{ID: e.ID, Err: err}
		}
		data.Entries = append(data.Entries, entryView{
			ChangeType:  string(e.ChangeType),
			Class:       strings.ToLower(string(e.ChangeType)),
			Description: e.Description,
			Date:        e.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &RenderError{Err: err}
	}

	return sb.String(), nil
}

// WriteFile renders the entries and writes the report to path atomically.
func WriteFile(path string, entries []changelog.Entry, opts Options) error {
	html, err := Render(entries, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("replacing report file: %w", err)
	}

	return nil
}

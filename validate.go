package sitectl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IssueType categorizes a validation finding.
type IssueType int

const (
	// IssueMissingFile means the entry's HTML page does not exist.
	IssueMissingFile IssueType = iota
	// IssueMissingField means a required field is missing or empty.
	IssueMissingField
	// IssueDuplicateID means more than one entry uses the same id.
	IssueDuplicateID
)

// String returns a human-readable name for the issue type.
func (t IssueType) String() string {
	switch t {
	case IssueMissingFile:
		return "missing file"
	case IssueMissingField:
		return "missing field"
	case IssueDuplicateID:
		return "duplicate id"
	default:
		return "unknown"
	}
}

// Issue is a single validation finding for one entry.
type Issue struct {
	Type    IssueType
	EntryID string
	Title   string

	// File is set for IssueMissingFile, Field for IssueMissingField.
	File  string
	Field string
}

// Message formats the issue the way the validate command prints it.
func (i Issue) Message(kind *Kind) string {
	switch i.Type {
	case IssueMissingFile:
		return fmt.Sprintf("Missing file: %s for %s '%s'", i.File, kind.Singular, i.Title)
	case IssueMissingField:
		return fmt.Sprintf("Missing %s for %s '%s'", i.Field, kind.Singular, i.Title)
	case IssueDuplicateID:
		return fmt.Sprintf("Duplicate id: %s for %s '%s'", i.EntryID, kind.Singular, i.Title)
	default:
		return fmt.Sprintf("Unknown issue for %s '%s'", kind.Singular, i.Title)
	}
}

// Report is the result of Validate.
type Report struct {
	Entries int
	Issues  []Issue

	// Orphans are HTML files in the content directory that no entry refers
	// to. They are warnings, not issues.
	Orphans []string
}

// OK reports whether no issues were found.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Validate checks every entry for a backing page, required fields and a
// unique id. It collects all findings and never modifies anything.
func (a *App) Validate() (*Report, error) {
	entries, err := a.loadEntries()
	if err != nil {
		return nil, err
	}

	report := &Report{Entries: len(entries)}
	referenced := make(map[string]bool)
	seen := make(map[string]bool)

	for _, e := range entries {
		file := a.kind.PageFile(e)
		referenced[filepath.Clean(file)] = true

		if _, err := os.Stat(filepath.Join(a.config.Dir, file)); err != nil {
			report.Issues = append(report.Issues, Issue{
				Type:    IssueMissingFile,
				EntryID: e.ID(),
				Title:   e.Title(),
				File:    file,
			})
		}

		for _, field := range a.kind.Required {
			if e.Empty(field) {
				report.Issues = append(report.Issues, Issue{
					Type:    IssueMissingField,
					EntryID: e.ID(),
					Title:   e.Title(),
					Field:   field,
				})
			}
		}

		if id := e.ID(); id != "" {
			if seen[id] {
				report.Issues = append(report.Issues, Issue{
					Type:    IssueDuplicateID,
					EntryID: id,
					Title:   e.Title(),
				})
			}
			seen[id] = true
		}
	}

	pages, err := scanPages(a.config.Dir)
	if err != nil {
		return nil, err
	}
	template := filepath.Base(a.config.Template)
	for _, p := range pages {
		if !referenced[p] && p != template {
			report.Orphans = append(report.Orphans, p)
		}
	}

	return report, nil
}

// scanPages lists the .html files directly inside dir, sorted by name. A
// missing directory has no pages.
func scanPages(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sitectl: scan pages: %w", err)
	}
	var pages []string
	for _, d := range des {
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".html") {
			continue
		}
		pages = append(pages, d.Name())
	}
	sort.Strings(pages)
	return pages, nil
}

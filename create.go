package sitectl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/minify/v2"
)

// CreateOptions are the inputs of the create command. Empty values get the
// kind's defaults.
type CreateOptions struct {
	Title       string
	Subtitle    string
	Description string
	Status      string

	// Cover is the article cover image filename.
	Cover string

	// GitHub and Demo are project links. Demo adds a demo link to the page.
	GitHub string
	Demo   string

	// Technologies is the project's technology list. When TechnologiesSet is
	// false the list is derived from the subtitle.
	Technologies    []string
	TechnologiesSet bool

	// Featured marks a project as featured.
	Featured bool

	// Force overwrites an existing page file with the same name.
	Force bool

	// Minify minifies the generated page (also enabled by Config.Minify).
	Minify bool
}

// CreateResult describes a created entry.
type CreateResult struct {
	Entry Entry

	// Filename is the page file name, Path its full path.
	Filename string
	Path     string

	// TemplateCreated is true when the default template had to be written.
	TemplateCreated bool
}

// Create adds a new entry and writes its page. The store is only saved after
// the page was written; if saving fails the page is removed again, so a
// failed create leaves no trace.
func (a *App) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	opts.Title = strings.TrimSpace(opts.Title)
	if opts.Title == "" {
		return nil, ErrEmptyTitle
	}
	if opts.Subtitle == "" {
		opts.Subtitle = a.kind.DefaultSubtitle
	}
	if opts.Status == "" {
		opts.Status = StatusDraft
	}
	if opts.Status != StatusDraft && opts.Status != StatusPublished {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, opts.Status)
	}

	id := Slugify(opts.Title)
	if strings.Trim(id, "-") == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptySlug, opts.Title)
	}

	entries, err := a.loadEntries()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID() == id {
			return nil, fmt.Errorf("%w: %s with id '%s'", ErrDuplicateEntry, a.kind.Singular, id)
		}
	}

	entry := a.kind.build(opts, id, today(a.config.Now()))
	filename := a.kind.PageFile(entry)
	path := filepath.Join(a.config.Dir, filename)

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w: %s", ErrPageExists, path)
	}

	tmpl, created, err := a.readTemplate()
	if err != nil {
		return nil, err
	}

	var m *minify.M
	if opts.Minify || a.config.Minify {
		m = newMinifier()
	}
	page, err := renderPage(ctx, a.kind.Page(tmpl, entry), m)
	if err != nil {
		return nil, err
	}
	if err := writePage(path, page); err != nil {
		return nil, err
	}

	if a.kind.Prepend {
		entries = append([]Entry{entry}, entries...)
	} else {
		entries = append(entries, entry)
	}
	if err := a.store.Save(entries); err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			a.log.WithError(rmErr).WithField("page", path).Warn("could not remove page after failed save")
		}
		return nil, err
	}

	a.log.WithFields(logrus.Fields{"id": id, "page": path, "entries": len(entries)}).Debug("saved store")

	return &CreateResult{
		Entry:           entry,
		Filename:        filename,
		Path:            path,
		TemplateCreated: created,
	}, nil
}

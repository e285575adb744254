// Package sitectl manages the content of a static personal website: blog
// articles and portfolio projects.
//
// Each content Kind keeps its entries in a JSON store, creates one HTML page
// per entry from a template, and mirrors the store into a JavaScript loader so
// the site works on static hosting. Run(kind) dispatches the CLI commands
// (create, list, validate, template, sync, sitemap); NewApp gives direct
// access to the same operations.
package sitectl

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrEmptySlug      = errors.New("title has no characters usable in an id")
	ErrDuplicateEntry = errors.New("entry already exists")
	ErrPageExists     = errors.New("page file already exists")
	ErrInvalidStatus  = errors.New("status must be draft or published")
	ErrInvalidStore   = errors.New("invalid JSON store")
	ErrStoreNotFound  = errors.New("JSON store not found")
	ErrLoaderPattern  = errors.New("loader has no data array assignment")
	ErrLoaderRegion   = errors.New("loader data region is malformed")
	ErrLoaderSyntax   = errors.New("rewritten loader is not valid JavaScript")
	ErrNoSiteURL      = errors.New("site URL is not configured")
)

// Config holds the file locations and options for one content Kind.
// Relative paths are resolved against Root by NewApp.
type Config struct {
	// Root is the site root directory (default ".").
	Root string

	// Dir is the content directory holding the entry pages.
	Dir string

	// Store is the JSON store path.
	Store string

	// Template is the HTML template path.
	Template string

	// Loader is the JavaScript loader path.
	Loader string

	// ArrayName overrides the loader property name (default Kind.ArrayName).
	ArrayName string

	// SiteURL is the public base URL, used for sitemaps.
	SiteURL string

	// Minify minifies generated pages.
	Minify bool

	// Now returns the current time (default time.Now).
	Now func() time.Time
}

// App runs content operations for one Kind.
type App struct {
	kind   *Kind
	config Config
	store  *Store
	out    io.Writer
	log    *logrus.Logger
}

// NewApp creates an App for kind. Empty config fields get the kind's
// defaults; relative paths are resolved against cfg.Root.
func NewApp(kind *Kind, cfg Config) *App {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Dir == "" {
		cfg.Dir = kind.Dir
	}
	cfg.Dir = resolve(cfg.Root, cfg.Dir)
	if cfg.Store == "" {
		cfg.Store = filepath.Join(cfg.Dir, kind.StoreFile)
	} else {
		cfg.Store = resolve(cfg.Root, cfg.Store)
	}
	if cfg.Template == "" {
		cfg.Template = filepath.Join(cfg.Dir, kind.TemplateFile)
	} else {
		cfg.Template = resolve(cfg.Root, cfg.Template)
	}
	if cfg.Loader == "" {
		cfg.Loader = kind.LoaderPath
	}
	cfg.Loader = resolve(cfg.Root, cfg.Loader)
	if cfg.ArrayName == "" {
		cfg.ArrayName = kind.ArrayName
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	return &App{
		kind:   kind,
		config: cfg,
		store:  NewStore(cfg.Store),
		out:    os.Stdout,
		log:    logger,
	}
}

// Kind returns the content kind the App manages.
func (a *App) Kind() *Kind { return a.kind }

// Config returns the resolved configuration.
func (a *App) Config() Config { return a.config }

// SetOutput redirects console reports (default os.Stdout).
func (a *App) SetOutput(w io.Writer) { a.out = w }

// Logger returns the App's diagnostic logger.
func (a *App) Logger() *logrus.Logger { return a.log }

// pagePath returns the filesystem path of an entry's page.
func (a *App) pagePath(e Entry) string {
	return filepath.Join(a.config.Dir, a.kind.PageFile(e))
}

// loadEntries loads the store, logging what was read.
func (a *App) loadEntries() ([]Entry, error) {
	entries, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{"store": a.store.Path(), "entries": len(entries)}).Debug("loaded store")
	return entries, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

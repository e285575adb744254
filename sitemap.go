package sitectl

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ---------------------------------------------------------------------------
// Sitemap XML types
// ---------------------------------------------------------------------------

const (
	sitemapNS      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	maxSitemapURLs = 50_000
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// ---------------------------------------------------------------------------
// URL collection
// ---------------------------------------------------------------------------

// SitemapPath returns the default sitemap location for the kind.
func (a *App) SitemapPath() string {
	return filepath.Join(a.config.Root, "sitemap-"+a.kind.Plural+".xml")
}

// collectSitemapURLs returns one URL per published entry, in stored order.
// Draft entries are excluded.
func (a *App) collectSitemapURLs(entries []Entry) ([]sitemapURL, error) {
	siteURL := strings.TrimRight(a.config.SiteURL, "/")
	if siteURL == "" {
		return nil, ErrNoSiteURL
	}

	prefix, err := filepath.Rel(a.config.Root, a.config.Dir)
	if err != nil {
		return nil, fmt.Errorf("sitectl: content dir outside root: %w", err)
	}
	prefix = filepath.ToSlash(prefix)
	if prefix == "." {
		prefix = ""
	}

	var urls []sitemapURL
	for _, e := range entries {
		if !e.Published() {
			continue
		}
		loc := siteURL + "/"
		if prefix != "" {
			loc += prefix + "/"
		}
		loc += a.kind.PageFile(e)
		urls = append(urls, sitemapURL{Loc: loc, LastMod: e.Text(a.kind.DateField)})
	}
	return urls, nil
}

// ---------------------------------------------------------------------------
// Sitemap writing
// ---------------------------------------------------------------------------

// WriteSitemap writes a sitemap of published entries to path (default
// SitemapPath) and returns the number of URLs.
func (a *App) WriteSitemap(path string) (int, error) {
	if path == "" {
		path = a.SitemapPath()
	}
	entries, err := a.loadEntries()
	if err != nil {
		return 0, err
	}
	urls, err := a.collectSitemapURLs(entries)
	if err != nil {
		return 0, err
	}
	if len(urls) > maxSitemapURLs {
		return 0, fmt.Errorf("sitectl: %d URLs exceed the sitemap limit of %d", len(urls), maxSitemapURLs)
	}
	if err := writeXML(path, urlSet{NS: sitemapNS, URLs: urls}); err != nil {
		return 0, err
	}
	return len(urls), nil
}

// ---------------------------------------------------------------------------
// XML helpers
// ---------------------------------------------------------------------------

func writeXML(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("sitectl: marshal sitemap: %w", err)
	}
	content := xml.Header + string(data) + "\n"
	return os.WriteFile(path, []byte(content), 0o644)
}

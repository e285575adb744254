package sitectl

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectSitemapURLs(t *testing.T) {
	app, _ := newTestApp(t, Articles)
	app.config.SiteURL = "https://example.com/"

	pub := articleEntry("live", "Live")
	pub.SetText("published", "2025-02-01")
	pub.SetText("status", StatusPublished)
	pub.SetText("url", "live.html")
	draft := articleEntry("wip", "WIP")
	draft.SetText("status", StatusDraft)

	urls, err := app.collectSitemapURLs([]Entry{draft, pub})
	if err != nil {
		t.Fatal(err)
	}
	want := []sitemapURL{{Loc: "https://example.com/articles/live.html", LastMod: "2025-02-01"}}
	if diff := cmp.Diff(want, urls); diff != "" {
		t.Errorf("urls mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectSitemapURLs_NoSiteURL(t *testing.T) {
	app, _ := newTestApp(t, Articles)
	_, err := app.collectSitemapURLs(nil)
	if !errors.Is(err, ErrNoSiteURL) {
		t.Errorf("error = %v, want ErrNoSiteURL", err)
	}
}

func TestWriteSitemap(t *testing.T) {
	app, root := newTestApp(t, Projects)
	app.config.SiteURL = "https://example.com"
	mustCreate(t, app, CreateOptions{Title: "Shipped", Status: StatusPublished})
	mustCreate(t, app, CreateOptions{Title: "Hidden"})

	n, err := app.WriteSitemap("")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("WriteSitemap() = %d, want 1", n)
	}

	path := filepath.Join(root, "sitemap-projects.xml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), xml.Header) {
		t.Error("sitemap is missing the XML header")
	}

	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		t.Fatal(err)
	}
	if set.NS != sitemapNS {
		t.Errorf("xmlns = %q, want %q", set.NS, sitemapNS)
	}
	want := []sitemapURL{{Loc: "https://example.com/portfolio/shipped.html", LastMod: "2025-03-14"}}
	if diff := cmp.Diff(want, set.URLs); diff != "" {
		t.Errorf("urls mismatch (-want +got):\n%s", diff)
	}
}

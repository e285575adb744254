package sitectl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

// Page returns the component for an entry's page: the template text with
// every placeholder token replaced in a single pass, so substituted values
// are never scanned for tokens again.
func (k *Kind) Page(tmpl string, e Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tokens, err := k.tokens(ctx, e)
		if err != nil {
			return err
		}
		_, err = strings.NewReplacer(tokens...).WriteString(w, tmpl)
		return err
	})
}

// demoLink renders the "Live Demo" link for a project page. An empty URL
// renders nothing.
func demoLink(url string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if url == "" {
			return nil
		}
		_, err := io.WriteString(w, `<a class="inline-link demo-link" href="`+templ.EscapeString(url)+
			`" target="_blank" rel="noopener noreferrer">Live Demo →</a>`)
		return err
	})
}

// renderString renders a component to a string.
func renderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("sitectl: render fragment: %w", err)
	}
	return buf.String(), nil
}

// newMinifier returns a minifier for generated pages. Document and end tags
// are kept so pages stay editable by hand.
func newMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// renderPage renders c, optionally minifies it, and returns the bytes.
func renderPage(ctx context.Context, c templ.Component, m *minify.M) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("sitectl: render page: %w", err)
	}
	if m == nil {
		return buf.Bytes(), nil
	}
	minified, err := m.Bytes("text/html", buf.Bytes())
	if err != nil {
		// On minification error, fall through with original output.
		return buf.Bytes(), nil
	}
	return minified, nil
}

// writePage writes a rendered page, creating parent directories.
func writePage(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("sitectl: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sitectl: write %s: %w", path, err)
	}
	return nil
}

package sitectl

import (
	"fmt"
	"io"
	"strings"
)

const (
	glyphPublished = "✅"
	glyphDraft     = "📝"
	glyphFeatured  = "🌟 "
	glyphIssue     = "❌"
)

// List prints every entry in stored order.
func (a *App) List(w io.Writer) error {
	entries, err := a.loadEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(w, "No %s found.\n", a.kind.Plural)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(entries), a.kind.Plural)
	fmt.Fprintln(w, strings.Repeat("=", 50))

	for _, e := range entries {
		glyph := glyphDraft
		if e.Published() {
			glyph = glyphPublished
		}
		featured := ""
		if e.Bool("featured") {
			featured = glyphFeatured
		}
		fmt.Fprintf(w, "%s %s%s\n", glyph, featured, e.Title())
		fmt.Fprintf(w, "   ID: %s\n", e.ID())
		fmt.Fprintf(w, "   Subtitle: %s\n", e.Text("subtitle"))
		fmt.Fprintf(w, "   Status: %s\n", e.Status())
		for _, line := range a.kind.describe(e) {
			fmt.Fprintf(w, "   %s\n", line)
		}
		fmt.Fprintln(w)
	}
	return nil
}

package sitectl

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// newTestApp returns an App for kind rooted in a fresh temp directory.
func newTestApp(t *testing.T, kind *Kind) (*App, string) {
	t.Helper()
	root := t.TempDir()
	app := NewApp(kind, Config{Root: root, Now: func() time.Time { return testNow }})
	app.SetOutput(io.Discard)
	app.Logger().SetOutput(io.Discard)
	return app, root
}

func mustCreate(t *testing.T, app *App, opts CreateOptions) *CreateResult {
	t.Helper()
	res, err := app.Create(context.Background(), opts)
	if err != nil {
		t.Fatalf("Create(%q): %v", opts.Title, err)
	}
	return res
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func storedIDs(t *testing.T, app *App) []string {
	t.Helper()
	entries, err := app.store.Load()
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID()
	}
	return ids
}

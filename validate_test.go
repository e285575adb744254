package sitectl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate_Clean(t *testing.T) {
	app, _ := newTestApp(t, Articles)
	mustCreate(t, app, CreateOptions{Title: "One"})
	mustCreate(t, app, CreateOptions{Title: "Two"})

	report, err := app.Validate()
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Errorf("issues = %v, want none", report.Issues)
	}
	if report.Entries != 2 {
		t.Errorf("Entries = %d, want 2", report.Entries)
	}
	if len(report.Orphans) != 0 {
		t.Errorf("Orphans = %v, want none (template must not count)", report.Orphans)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	app, _ := newTestApp(t, Articles)
	mustCreate(t, app, CreateOptions{Title: "One"})
	res := mustCreate(t, app, CreateOptions{Title: "Two"})
	os.Remove(res.Path)

	report, err := app.Validate()
	if err != nil {
		t.Fatal(err)
	}
	want := []Issue{{Type: IssueMissingFile, EntryID: "two", Title: "Two", File: "two.html"}}
	if diff := cmp.Diff(want, report.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
	if got := report.Issues[0].Message(Articles); got != "Missing file: two.html for article 'Two'" {
		t.Errorf("Message() = %q", got)
	}
}

func TestValidate_MissingFieldsAndDuplicates(t *testing.T) {
	app, root := newTestApp(t, Projects)
	writeFile(t, filepath.Join(root, "portfolio", "dup.html"), "<p></p>")

	var a, b Entry
	for _, e := range []*Entry{&a, &b} {
		e.SetText("id", "dup")
		e.SetText("title", "Dup")
		e.SetText("subtitle", "S")
		e.SetText("description", "D")
		e.SetText("created", "2025-01-01")
		e.SetText("status", StatusDraft)
	}
	b.SetText("description", "")
	if err := app.store.Save([]Entry{a, b}); err != nil {
		t.Fatal(err)
	}

	report, err := app.Validate()
	if err != nil {
		t.Fatal(err)
	}
	want := []Issue{
		{Type: IssueMissingField, EntryID: "dup", Title: "Dup", Field: "description"},
		{Type: IssueDuplicateID, EntryID: "dup", Title: "Dup"},
	}
	if diff := cmp.Diff(want, report.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
	if got := report.Issues[0].Message(Projects); got != "Missing description for project 'Dup'" {
		t.Errorf("Message() = %q", got)
	}
}

func TestValidate_Orphans(t *testing.T) {
	app, root := newTestApp(t, Articles)
	mustCreate(t, app, CreateOptions{Title: "Kept"})
	writeFile(t, filepath.Join(root, "articles", "stray.html"), "<p></p>")
	writeFile(t, filepath.Join(root, "articles", "notes.txt"), "")

	report, err := app.Validate()
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Errorf("issues = %v, want none", report.Issues)
	}
	if diff := cmp.Diff([]string{"stray.html"}, report.Orphans); diff != "" {
		t.Errorf("orphans mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_EmptyStore(t *testing.T) {
	app, _ := newTestApp(t, Articles)
	report, err := app.Validate()
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() || report.Entries != 0 {
		t.Errorf("report = %+v, want empty and OK", report)
	}
}

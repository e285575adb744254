package sitectl

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func mustRender(t *testing.T, c templ.Component) string {
	t.Helper()
	s, err := renderString(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestKindPage_ReplacesTokens(t *testing.T) {
	var e Entry
	e.SetText("title", "T")
	e.SetText("subtitle", "S")
	e.SetText("description", "D")

	got := mustRender(t, Articles.Page("{{TITLE}}/{{SUBTITLE}}/{{DESCRIPTION}}/{{TITLE}}", e))
	if got != "T/S/D/T" {
		t.Errorf("page = %q, want %q", got, "T/S/D/T")
	}
}

func TestKindPage_DemoAnchorBeforeBareToken(t *testing.T) {
	var e Entry
	e.SetText("demo", "https://demo.example.com")

	got := mustRender(t, Projects.Page("["+demoLinkAnchor+"]["+demoLinkToken+"]", e))
	link := mustRender(t, demoLink("https://demo.example.com"))
	if want := "[" + link + "][" + link + "]"; got != want {
		t.Errorf("page = %q, want %q", got, want)
	}
}

func TestKindPage_EscapesGitHubURL(t *testing.T) {
	var e Entry
	e.SetText("title", "Rock & Roll")
	e.SetText("github", `https://github.com/x/y?a=1&b="2"`)

	got := mustRender(t, Projects.Page(`<h1>{{TITLE}}</h1><a href="{{GITHUB}}">{{GITHUB}}</a>`, e))
	want := `<h1>Rock & Roll</h1><a href="https://github.com/x/y?a=1&amp;b=&#34;2&#34;">https://github.com/x/y?a=1&amp;b=&#34;2&#34;</a>`
	if got != want {
		t.Errorf("page = %q, want %q", got, want)
	}
}

func TestKindPage_TokenErrorFailsRender(t *testing.T) {
	errBoom := errors.New("boom")
	k := &Kind{tokens: func(ctx context.Context, e Entry) ([]string, error) { return nil, errBoom }}

	_, err := renderString(context.Background(), k.Page("{{TITLE}}", Entry{}))
	if !errors.Is(err, errBoom) {
		t.Errorf("error = %v, want %v", err, errBoom)
	}
}

func TestRenderString_ReturnsError(t *testing.T) {
	errBoom := errors.New("boom")
	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "partial")
		return errBoom
	})
	got, err := renderString(context.Background(), c)
	if !errors.Is(err, errBoom) {
		t.Errorf("error = %v, want %v", err, errBoom)
	}
	if got != "" {
		t.Errorf("output = %q, want empty on error", got)
	}
}

func TestDemoLink(t *testing.T) {
	if got := mustRender(t, demoLink("")); got != "" {
		t.Errorf("demoLink(\"\") = %q, want empty", got)
	}
	got := mustRender(t, demoLink(`https://x.test/"><script>`))
	if strings.Contains(got, "<script>") {
		t.Errorf("demoLink did not escape the URL: %s", got)
	}
	if !strings.HasPrefix(got, `<a class="inline-link demo-link" href="https://x.test/&#34;&gt;&lt;script&gt;"`) {
		t.Errorf("demoLink = %s", got)
	}
}

func TestRenderPage_Minify(t *testing.T) {
	var e Entry
	e.SetText("title", "Hello")
	c := Articles.Page("<p>\n   {{TITLE}}   world\n</p>\n", e)

	plain, err := renderPage(context.Background(), c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(plain) != "<p>\n   Hello   world\n</p>\n" {
		t.Errorf("plain = %q", plain)
	}

	small, err := renderPage(context.Background(), c, newMinifier())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(small), "Hello world") || strings.Contains(string(small), "\n") {
		t.Errorf("minified = %q, want collapsed whitespace", small)
	}
}

func TestSplitSubtitle(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Go • React • 2025", []string{"Go", "React", "2025"}},
		{"Solo", []string{"Solo"}},
		{"", []string{}},
		{"A •  • B", []string{"A", "B"}},
	}
	for _, tt := range tests {
		got := splitSubtitle(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("splitSubtitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPageFile(t *testing.T) {
	var e Entry
	e.SetText("id", "post")
	if got := Articles.PageFile(e); got != "post.html" {
		t.Errorf("Articles.PageFile without url = %q", got)
	}
	e.SetText("url", "custom.html")
	if got := Articles.PageFile(e); got != "custom.html" {
		t.Errorf("Articles.PageFile = %q, want custom.html", got)
	}
	if got := Projects.PageFile(e); got != "post.html" {
		t.Errorf("Projects.PageFile = %q, want post.html", got)
	}
}

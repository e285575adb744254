package sitectl

import (
	"context"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"
)

// Kind describes one type of managed content. The articles and projects
// tools are the same program driven by a different Kind.
type Kind struct {
	// Singular and Plural name the kind in console output ("article", "articles").
	Singular string
	Plural   string

	// Dir is the default content directory relative to the site root.
	Dir string

	// StoreFile, TemplateFile and LoaderPath are default locations. The
	// first two are relative to Dir, LoaderPath to the site root.
	StoreFile    string
	TemplateFile string
	LoaderPath   string

	// ArrayName is the loader property that holds the embedded data
	// (this.<ArrayName> = [...]).
	ArrayName string

	// DateField is the field stamped with the creation date.
	DateField string

	// DefaultSubtitle is used when create is given no subtitle.
	DefaultSubtitle string

	// Prepend inserts new entries at the front of the store instead of
	// appending them.
	Prepend bool

	// Required lists the fields validate expects to be non-empty.
	Required []string

	// Template is the default page template written by the template command.
	Template string

	flags    func(cmd *cobra.Command, opts *CreateOptions)
	build    func(opts CreateOptions, id, date string) Entry
	pageFile func(e Entry) string
	tokens   func(ctx context.Context, e Entry) ([]string, error)
	describe func(e Entry) []string
}

// PageFile returns the name of the HTML page backing an entry.
func (k *Kind) PageFile(e Entry) string {
	if k.pageFile != nil {
		return k.pageFile(e)
	}
	return e.ID() + ".html"
}

const (
	dateLayout       = "2006-01-02"
	subtitleSep      = " • "
	demoLinkAnchor   = "<!-- {{DEMO_LINK}} placeholder for demo link if available -->"
	demoLinkToken    = "{{DEMO_LINK}}"
	articleCover     = "placeholder.svg"
	articleURLField  = "url"
	projectTechField = "technologies"
)

// Articles manages blog articles. New articles are appended to the store and
// their page is linked through the "url" field.
var Articles = &Kind{
	Singular:        "article",
	Plural:          "articles",
	Dir:             "articles",
	StoreFile:       "articles.json",
	TemplateFile:    "article-template.html",
	LoaderPath:      "assets/js/articles-loader.js",
	ArrayName:       "articlesData",
	DateField:       "published",
	DefaultSubtitle: "Article • Topic • 2025",
	Required:        []string{"id", "title", "subtitle", "description", "published", "status", "url"},
	Template:        articleTemplate,

	flags: func(cmd *cobra.Command, opts *CreateOptions) {
		cmd.Flags().StringVar(&opts.Cover, "cover", articleCover, "cover image filename")
	},
	build: func(opts CreateOptions, id, date string) Entry {
		description := opts.Description
		if description == "" {
			description = "An article about " + strings.ToLower(opts.Title) + "."
		}
		cover := opts.Cover
		if cover == "" {
			cover = articleCover
		}
		var e Entry
		e.SetText("id", id)
		e.SetText("title", opts.Title)
		e.SetText("subtitle", opts.Subtitle)
		e.SetText("description", description)
		e.SetText("cover", cover)
		e.SetText("published", date)
		e.SetText("status", opts.Status)
		e.SetText(articleURLField, id+".html")
		return e
	},
	pageFile: func(e Entry) string {
		if u := e.Text(articleURLField); u != "" {
			return u
		}
		return e.ID() + ".html"
	},
	tokens: func(ctx context.Context, e Entry) ([]string, error) {
		return []string{
			"{{TITLE}}", e.Title(),
			"{{SUBTITLE}}", e.Text("subtitle"),
			"{{DESCRIPTION}}", e.Text("description"),
		}, nil
	},
	describe: func(e Entry) []string {
		return []string{"Published: " + e.Text("published")}
	},
}

// Projects manages portfolio projects. New projects are prepended so the
// most recent one comes first.
var Projects = &Kind{
	Singular:        "project",
	Plural:          "projects",
	Dir:             "portfolio",
	StoreFile:       "projects.json",
	TemplateFile:    "project-template.html",
	LoaderPath:      "assets/js/portfolio-loader.js",
	ArrayName:       "projectsData",
	DateField:       "created",
	DefaultSubtitle: "Tech • Stack • Year",
	Prepend:         true,
	Required:        []string{"id", "title", "subtitle", "description", "created", "status"},
	Template:        projectTemplate,

	flags: func(cmd *cobra.Command, opts *CreateOptions) {
		fs := cmd.Flags()
		fs.StringVar(&opts.GitHub, "github", "", "GitHub repository URL")
		fs.StringVar(&opts.Demo, "demo", "", "demo URL")
		fs.StringSliceVar(&opts.Technologies, "technologies", nil, "technologies used (repeat or comma-separate; default: from subtitle)")
		fs.BoolVar(&opts.Featured, "featured", false, "mark as featured project")
	},
	build: func(opts CreateOptions, id, date string) Entry {
		tech := opts.Technologies
		if !opts.TechnologiesSet {
			tech = splitSubtitle(opts.Subtitle)
		}
		var e Entry
		e.SetText("id", id)
		e.SetText("title", opts.Title)
		e.SetText("subtitle", opts.Subtitle)
		e.SetText("description", opts.Description)
		e.SetText("github", opts.GitHub)
		e.SetText("demo", opts.Demo)
		e.SetStrings(projectTechField, tech)
		e.SetText("status", opts.Status)
		e.SetText("created", date)
		e.SetBool("featured", opts.Featured)
		return e
	},
	tokens: func(ctx context.Context, e Entry) ([]string, error) {
		demo, err := renderString(ctx, demoLink(e.Text("demo")))
		if err != nil {
			return nil, err
		}
		return []string{
			"{{TITLE}}", e.Title(),
			"{{SUBTITLE}}", e.Text("subtitle"),
			"{{DESCRIPTION}}", e.Text("description"),
			// URLs are escaped; text fields may carry inline markup.
			"{{GITHUB}}", templ.EscapeString(e.Text("github")),
			// The full anchor must come before the bare token.
			demoLinkAnchor, demo,
			demoLinkToken, demo,
		}, nil
	},
	describe: func(e Entry) []string {
		lines := []string{"Created: " + e.Text("created")}
		if gh := e.Text("github"); gh != "" {
			lines = append(lines, "GitHub: "+gh)
		}
		if tech := e.Strings(projectTechField); len(tech) > 0 {
			lines = append(lines, "Tech: "+strings.Join(tech, ", "))
		}
		return lines
	},
}

// splitSubtitle derives a technology list from a "A • B • C" subtitle.
func splitSubtitle(subtitle string) []string {
	tech := []string{}
	for _, part := range strings.Split(subtitle, subtitleSep) {
		if part = strings.TrimSpace(part); part != "" {
			tech = append(tech, part)
		}
	}
	return tech
}

// today formats t as a store date.
func today(t time.Time) string {
	return t.Format(dateLayout)
}

package sitectl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Run executes the command-line tool for kind with os.Args and exits with
// its status. Supports:
//
//	create TITLE  create an entry, its page and store record
//	list          print all entries
//	validate      check pages and required fields
//	template      (re)write the default page template
//	sync          mirror the store into the JavaScript loader
//	sitemap       write a sitemap of published entries
//
// If no command is given, prints usage and exits 0.
func Run(kind *Kind) {
	os.Exit(Execute(context.Background(), kind, os.Args[1:], os.Stdout, os.Stderr))
}

// Execute runs the CLI for kind with args and returns the process exit code.
func Execute(ctx context.Context, kind *Kind, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd := NewCommand(kind, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		fmt.Fprintf(stderr, "%s %v\n", glyphIssue, err)
		return 1
	}
	return 0
}

// exitError ends the process with code after the command already reported
// the failure itself.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// NewCommand builds the command tree for kind. The App is created from the
// resolved settings before any subcommand runs.
func NewCommand(kind *Kind, stdout, stderr io.Writer) *cobra.Command {
	var (
		app     *App
		cfgFile string
		v       = viper.New()
	)

	root := &cobra.Command{
		Use:           "manage-" + kind.Plural,
		Short:         "Manage " + kind.Plural + " for the website",
		Long:          "Create, list, validate and sync " + kind.Plural + " and their HTML pages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(kind, v, cfgFile)
			if err != nil {
				return err
			}
			app = NewApp(kind, settings.Config)
			app.SetOutput(stdout)
			app.log.SetOutput(stderr)
			if settings.Verbose {
				app.log.SetLevel(logrus.DebugLevel)
			}
			if settings.File != "" {
				app.log.WithField("file", settings.File).Debug("using config file")
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./sitectl.yaml)")
	pf.String("root", ".", "site root directory")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	_ = v.BindPFlag("root", pf.Lookup("root"))
	_ = v.BindPFlag("verbose", pf.Lookup("verbose"))

	current := func() *App { return app }
	root.AddCommand(
		newCreateCmd(kind, current),
		newListCmd(current),
		newValidateCmd(current),
		newTemplateCmd(current),
		newSyncCmd(current),
		newSitemapCmd(v, current),
	)
	return root
}

// ---------------------------------------------------------------------------
// create TITLE
// ---------------------------------------------------------------------------

func newCreateCmd(kind *Kind, app func() *App) *cobra.Command {
	var opts CreateOptions
	cmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a new " + kind.Singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			opts.Title = args[0]
			opts.TechnologiesSet = cmd.Flags().Changed("technologies")

			res, err := a.Create(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := a.out
			if res.TemplateCreated {
				fmt.Fprintf(w, "Created %s template at %s\n", kind.Singular, a.config.Template)
			}
			fmt.Fprintf(w, "%s Created %s '%s'\n", glyphPublished, kind.Singular, res.Entry.Title())
			fmt.Fprintf(w, "   File: %s\n", res.Filename)
			fmt.Fprintf(w, "   ID: %s\n", res.Entry.ID())
			fmt.Fprintf(w, "   Status: %s\n", res.Entry.Status())
			if res.Entry.Bool("featured") {
				fmt.Fprintf(w, "   %sFeatured %s\n", glyphFeatured, kind.Singular)
			}
			fmt.Fprintf(w, "   Edit the file: %s\n", res.Path)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.Subtitle, "subtitle", kind.DefaultSubtitle, kind.Singular+" subtitle")
	fs.StringVar(&opts.Description, "description", "", kind.Singular+" description")
	fs.StringVar(&opts.Status, "status", StatusDraft, "status (draft|published)")
	fs.BoolVar(&opts.Force, "force", false, "overwrite an existing page file")
	fs.BoolVar(&opts.Minify, "minify", false, "minify the generated page")
	if kind.flags != nil {
		kind.flags(cmd, &opts)
	}
	return cmd
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

func newListCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			return a.List(a.out)
		},
	}
}

// ---------------------------------------------------------------------------
// validate
// ---------------------------------------------------------------------------

func newValidateCmd(app func() *App) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check pages and required fields of all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			report, err := a.Validate()
			if err != nil {
				return err
			}

			w := a.out
			if report.OK() {
				fmt.Fprintf(w, "%s All %s validated successfully!\n", glyphPublished, a.kind.Plural)
			} else {
				fmt.Fprintln(w, "Validation issues found:")
				for _, issue := range report.Issues {
					fmt.Fprintf(w, "%s %s\n", glyphIssue, issue.Message(a.kind))
				}
			}
			for _, orphan := range report.Orphans {
				fmt.Fprintf(w, "⚠️  Orphan page: %s (no %s refers to it)\n", orphan, a.kind.Singular)
			}

			if strict && !report.OK() {
				return &exitError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when issues are found")
	return cmd
}

// ---------------------------------------------------------------------------
// template
// ---------------------------------------------------------------------------

func newTemplateCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Write the default page template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			path, err := a.WriteTemplate()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created %s template at %s\n", a.kind.Singular, path)
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// sync
// ---------------------------------------------------------------------------

func newSyncCmd(app func() *App) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the JSON store into the JavaScript loader for static hosting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			report := func(n int, err error) bool {
				return reportSync(a, cmd.ErrOrStderr(), n, err)
			}
			ok := report(a.Sync())
			if !watch {
				if !ok {
					return &exitError{code: 1}
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Watch(ctx, func(n int, err error) { report(n, err) })
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and sync whenever the store changes")
	return cmd
}

// reportSync prints the outcome of a sync and reports whether it succeeded.
// Failures go to errOut.
func reportSync(a *App, errOut io.Writer, n int, err error) bool {
	if err != nil {
		fmt.Fprintf(errOut, "%s Error syncing %s to JavaScript: %v\n", glyphIssue, a.kind.Plural, err)
		return false
	}
	fmt.Fprintf(a.out, "%s Synced %d %s to JavaScript loader\n", glyphPublished, n, a.kind.Plural)
	return true
}

// ---------------------------------------------------------------------------
// sitemap
// ---------------------------------------------------------------------------

func newSitemapCmd(v *viper.Viper, app func() *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write a sitemap of published entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			path := out
			if path == "" {
				path = a.SitemapPath()
			}
			n, err := a.WriteSitemap(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s Wrote %d URLs to %s\n", glyphPublished, n, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default <root>/sitemap-<kind>.xml)")
	cmd.Flags().String("site-url", "", "public base URL of the site")
	_ = v.BindPFlag("site_url", cmd.Flags().Lookup("site-url"))
	return cmd
}

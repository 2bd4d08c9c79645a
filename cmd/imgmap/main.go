package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/imgmap/internal/config"
	"github.com/example/imgmap/internal/markup"
	"github.com/example/imgmap/internal/notify"
	"github.com/example/imgmap/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	notifier *notify.Notifier
	config   *config.Config

	copyAlerts   bool
	saveAlerts   bool
	exportAlerts bool
	themeName    string
	activeTheme  *theme.Theme

	// Generator defaults after CLI > Env > Config resolution.
	framework  markup.Framework
	altText    string
	responsive bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("imgmap", flag.ExitOnError),
		program:  "imgmap",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying markup to the clipboard")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a markup file")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after a crop or export finishes")

	// Precedence: CLI > Env > Config > Default. The flag default stays empty
	// so fallback can happen in Run once parsing is done.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (name or path to a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

// resolveTheme loads the active theme with CLI > Env > Config precedence.
func (r *root) resolveTheme() {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("IMGMAP_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}

	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		r.activeTheme = cfgTheme
		return
	}
	loader := theme.NewLoader()
	t, err := loader.Load(themeName)
	if err != nil {
		if themeName != "" && themeName != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		}
		t = theme.Default()
	}
	r.activeTheme = t
}

// resolveGeneratorDefaults applies Env > Config fallback for the markup
// options. Subcommand flags layer their own CLI values on top.
func (r *root) resolveGeneratorDefaults() {
	name := strings.TrimSpace(os.Getenv("IMGMAP_FRAMEWORK"))
	if name == "" {
		name = r.config.Framework
	}
	if f, ok := markup.ParseFramework(name); ok {
		r.framework = f
	} else {
		r.framework = markup.HTML
	}

	r.altText = os.Getenv("IMGMAP_ALT_TEXT")
	if r.altText == "" {
		r.altText = r.config.AltText
	}
	r.responsive = r.config.Responsive
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
	}
	r.resolveTheme()
	r.resolveGeneratorDefaults()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "annotate":
		cmd, err = parseAnnotateCmd(subArgs, r)
	case "generate":
		cmd, err = parseGenerateCmd(subArgs, r)
	case "favicon":
		cmd, err = parseFaviconCmd(subArgs, r)
	case "crop":
		cmd, err = parseCropCmd(subArgs, r)
	case "export":
		cmd, err = parseExportCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

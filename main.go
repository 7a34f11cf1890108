// lprojkit converts per-language XLIFF documents into Xcode .lproj string resources.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minios-linux/lprojkit/config"
	"github.com/minios-linux/lprojkit/exporter"
	"github.com/minios-linux/lprojkit/i18n"
	"github.com/minios-linux/lprojkit/locale"
	"github.com/minios-linux/lprojkit/logging"
	"github.com/minios-linux/lprojkit/lproj"
	"github.com/minios-linux/lprojkit/stringsfile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset = "\033[0m"
	colorBlue  = "\033[0;34m"
)

// ---------------------------------------------------------------------------
// Global state
// ---------------------------------------------------------------------------

var (
	// fsys is the filesystem every command works on.
	fsys afero.Fs = afero.NewOsFs()
	// stdout receives diagnostics and command output.
	stdout io.Writer = os.Stdout
	// log is replaced in PersistentPreRun once flags are parsed.
	log = logging.New(os.Stdout)
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lprojkit",
		Short: i18n.T("Convert XLIFF documents into localized .strings resource files"),
		Long: `lprojkit converts a localization repository holding one XLIFF 1.2
document per language into the .lproj resource layout an Xcode project
compiles:

  l10n/en-US/firefox-ios.xliff      export/Client/en.lproj/Localizable.strings
  l10n/fr/firefox-ios.xliff    ->   export/Client/fr.lproj/Localizable.strings
                                    export/ShareTo/fr.lproj/Localizable.strings

Commands:
  export      Write .lproj resource files from XLIFF documents
  list        List localized .lproj bundles per build target
  config      Print the effective configuration
  version     Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(stdout, logging.WithColor(!noColor && os.Getenv("NO_COLOR") == ""), logging.WithVerbose(verbose))
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.FileName, "Path to the configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newExportCmd(),
		newListCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		_ = log.Sync()
		os.Exit(1)
	}
}

// loadConfig reads the configuration file. A missing file is only an error
// when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		if ok, _ := afero.Exists(fsys, configPath); !ok {
			return nil, fmt.Errorf("config file %s not found", configPath)
		}
	}
	return config.Load(fsys, configPath)
}

// ---------------------------------------------------------------------------
// export
// ---------------------------------------------------------------------------

type exportArgs struct {
	product    string
	baseLocale string
	noEscape   bool
}

func newExportCmd() *cobra.Command {
	var a exportArgs

	cmd := &cobra.Command{
		Use:   "export <import_root> <export_root>",
		Short: i18n.T("Write .lproj resource files from XLIFF documents"),
		Long: `Read <import_root>/*/<product>.xliff and write one .strings file per
recognized file section into <export_root>/<group>/<lang>.lproj/.

Both directories must exist. Documents without file sections or without a
resolvable target language are reported and skipped; the exit status stays 0.
The document in the base locale directory (en-US by default) may omit
target-language: its source strings are written as the translations.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("product") {
				cfg.Product = a.product
			}
			if cmd.Flags().Changed("base-locale") {
				cfg.BaseLocale = a.baseLocale
			}
			if a.noEscape {
				cfg.EscapeValues = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runExport(cfg, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&a.product, "product", config.DefaultProduct, "Document base name (<product>.xliff)")
	cmd.Flags().StringVar(&a.baseLocale, "base-locale", config.DefaultBaseLocale, "Directory name of the base locale")
	cmd.Flags().BoolVar(&a.noEscape, "no-escape", false, "Write keys and values without escaping quotes and backslashes")

	return cmd
}

func runExport(cfg *config.Config, importRoot, exportRoot string) error {
	exp := exporter.New(fsys, cfg, log)
	report, err := exp.Export(importRoot, exportRoot)
	if err != nil {
		if errors.Is(err, exporter.ErrInvalidArgument) {
			return err
		}
		return fmt.Errorf("export aborted: %w", err)
	}

	n := len(report.Written)
	log.Infof(i18n.T("Export finished")+": "+i18n.N("%d file written", "%d files written", n), n)
	if s := len(report.Skipped); s > 0 {
		log.Warnf(i18n.N("%d document skipped", "%d documents skipped", s), s)
	}
	return nil
}

// ---------------------------------------------------------------------------
// list (registrar view of the export tree)
// ---------------------------------------------------------------------------

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <export_root>",
		Short: i18n.T("List localized .lproj bundles per build target"),
		Long: `List the <target>/*.lproj bundles under <export_root> for every
configured build target, with the number of entries in each resource file.
This is the set of resources a build-project registrar would add.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runList(cfg, args[0])
		},
	}

	return cmd
}

func runList(cfg *config.Config, exportRoot string) error {
	if ok, _ := afero.DirExists(fsys, exportRoot); !ok {
		return fmt.Errorf("%w: export path %q does not exist or is not a directory", exporter.ErrInvalidArgument, exportRoot)
	}

	all, err := lproj.DiscoverAll(fsys, exportRoot, cfg.Targets)
	if err != nil {
		return err
	}

	blue, reset := colorBlue, colorReset
	if noColor || os.Getenv("NO_COLOR") != "" {
		blue, reset = "", ""
	}

	width := langColumnWidth(lproj.Languages(all))
	for _, target := range cfg.Targets {
		bundles := all[target]
		fmt.Fprintf(stdout, "\n%s%s%s\n", blue, target, reset)
		fmt.Fprintln(stdout, strings.Repeat("─", 60))
		if len(bundles) == 0 {
			fmt.Fprintf(stdout, "  %s\n", fmt.Sprintf(i18n.T("No localized bundles found for %s"), target))
			continue
		}
		for _, b := range bundles {
			fmt.Fprintf(stdout, "  %-*s  %s\n", width, b.Lang, locale.Name(b.Lang))
			for _, name := range b.Files {
				fmt.Fprintf(stdout, "  %-*s    %-28s %s\n", width, "", name, entryCount(filepath.Join(b.Path, name)))
			}
		}
	}
	fmt.Fprintln(stdout)
	return nil
}

// entryCount describes the number of entries in a resource file.
func entryCount(path string) string {
	if !stringsfile.IsStringsFile(path) && filepath.Ext(path) != ".plist" {
		return "-"
	}
	f, err := stringsfile.ParseFile(fsys, path)
	if err != nil {
		log.Debugw("Unreadable resource file", zap.String("path", path), zap.Error(err))
		return "?"
	}
	return i18n.N("%d entry", "%d entries", f.Len())
}

func langColumnWidth(langs []string) int {
	width := len("Lang")
	for _, l := range langs {
		if len(l) > width {
			width = len(l)
		}
	}
	return width
}

// ---------------------------------------------------------------------------
// config
// ---------------------------------------------------------------------------

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: i18n.T("Print the effective configuration"),
		Long:  `Print the configuration after applying defaults and the configuration file, as YAML.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		},
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("Show version information"),
		Long:  `Display version, commit hash, build date and the embedded message catalogs.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "lprojkit version %s\n", version)
			fmt.Fprintf(stdout, "  commit:    %s\n", commit)
			fmt.Fprintf(stdout, "  built:     %s\n", date)
			fmt.Fprintf(stdout, "  catalogs:  %s\n", strings.Join(i18n.Languages(), ", "))
		},
	}
}

// Package exporter converts a directory of per-language XLIFF documents into
// Apple .strings resource files.
//
// Input layout (one document per language directory):
//
//	import_root/en-US/firefox-ios.xliff
//	import_root/fr/firefox-ios.xliff
//
// Output layout (one file per recognized file section and language):
//
//	export_root/Client/en.lproj/Localizable.strings
//	export_root/Client/fr.lproj/Localizable.strings
//	export_root/ShareTo/fr.lproj/Localizable.strings
//
// A document that has no file sections or whose language cannot be resolved
// is logged and skipped; the run continues with the next document.
package exporter

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minios-linux/lprojkit/config"
	"github.com/minios-linux/lprojkit/locale"
	"github.com/minios-linux/lprojkit/lproj"
	"github.com/minios-linux/lprojkit/stringsfile"
	"github.com/minios-linux/lprojkit/xliff"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// ErrInvalidArgument is returned when the import or export root is not an
	// existing directory. Nothing is processed in that case.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoFiles marks a document without file sections.
	ErrNoFiles = errors.New("no translated files")
	// ErrMissingTargetLanguage marks a document whose language is unknown.
	ErrMissingTargetLanguage = errors.New("missing target language")
)

// Exporter performs the conversion. It is not safe for concurrent use.
type Exporter struct {
	fs       afero.Fs
	cfg      *config.Config
	files    map[string]bool
	baseCode string
	log      *zap.SugaredLogger
}

// New returns an Exporter reading and writing through fsys.
func New(fsys afero.Fs, cfg *config.Config, log *zap.SugaredLogger) *Exporter {
	return &Exporter{
		fs:       fsys,
		cfg:      cfg,
		files:    cfg.FileSet(),
		baseCode: locale.Base(cfg.BaseLocale),
		log:      log,
	}
}

// Skip records a document that was not exported.
type Skip struct {
	Document string
	Err      error
}

// Report summarises an Export run.
type Report struct {
	// Documents is the number of documents found.
	Documents int
	// Written lists the resource files written, in order.
	Written []string
	// Skipped lists documents skipped with a recoverable error.
	Skipped []Skip
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

// Export converts every document under importRoot into resource files under
// exportRoot. Per-document problems are logged and recorded in the report;
// only invalid roots, unparseable documents and write failures abort the run.
func (e *Exporter) Export(importRoot, exportRoot string) (*Report, error) {
	if err := e.checkDir("import", importRoot); err != nil {
		return nil, err
	}
	if err := e.checkDir("export", exportRoot); err != nil {
		return nil, err
	}

	docs, err := e.FindDocuments(importRoot)
	if err != nil {
		return nil, err
	}

	report := &Report{Documents: len(docs)}
	for _, doc := range docs {
		e.log.Infof("Processing %s", doc)
		written, err := e.ExportDocument(doc, exportRoot)
		report.Written = append(report.Written, written...)
		switch {
		case err == nil:
		case errors.Is(err, ErrNoFiles), errors.Is(err, ErrMissingTargetLanguage):
			e.log.Errorf("%s: %v", doc, err)
			report.Skipped = append(report.Skipped, Skip{Document: doc, Err: err})
		default:
			return report, err
		}
	}

	e.log.Debugf("Exported %d file(s) from %d document(s), %d skipped",
		len(report.Written), report.Documents, len(report.Skipped))
	return report, nil
}

func (e *Exporter) checkDir(name, path string) error {
	ok, err := afero.DirExists(e.fs, path)
	if err != nil || !ok {
		return fmt.Errorf("%w: %s path %q does not exist or is not a directory", ErrInvalidArgument, name, path)
	}
	return nil
}

// FindDocuments returns the interchange documents directly inside the
// per-language subdirectories of importRoot, sorted by path.
func (e *Exporter) FindDocuments(importRoot string) ([]string, error) {
	entries, err := afero.ReadDir(e.fs, importRoot)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", importRoot, err)
	}
	var docs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(importRoot, entry.Name(), e.cfg.DocumentName())
		if info, err := e.fs.Stat(path); err == nil && !info.IsDir() {
			docs = append(docs, path)
		}
	}
	sort.Strings(docs)
	return docs, nil
}

// ExportDocument converts a single document and returns the paths written.
// ErrNoFiles and ErrMissingTargetLanguage are returned wrapped; nothing is
// written in those cases.
func (e *Exporter) ExportDocument(docPath, exportRoot string) ([]string, error) {
	doc, err := xliff.ParseFile(e.fs, docPath)
	if err != nil {
		return nil, err
	}
	if len(doc.Files) == 0 {
		return nil, fmt.Errorf("%w found", ErrNoFiles)
	}

	res := ResolveLanguage(doc, docPath, e.cfg.BaseLocale)
	if res.Kind == MissingTarget {
		return nil, fmt.Errorf("%w: no target-language declared and %s is not the %s directory",
			ErrMissingTargetLanguage, filepath.Base(filepath.Dir(docPath)), e.cfg.BaseLocale)
	}
	baseLocale := res.Lang == e.baseCode
	lang := e.cfg.MapLanguage(res.Lang)
	if res.Kind == ForcedBaseLocale {
		e.log.Debugf("  No target-language declared, using base locale %q", lang)
	}

	var written []string
	for _, f := range doc.Files {
		if !e.files[f.Original] {
			e.log.Debugf("  Ignoring %s", f.Original)
			continue
		}
		dest, err := DestinationPath(exportRoot, f.Original, lang)
		if err != nil {
			e.log.Warnf("  %v", err)
			continue
		}
		e.log.Infof("  Generating %s", dest)
		out := BuildStrings(f, baseLocale, !e.cfg.EscapeValues)
		if err := out.WriteFile(e.fs, dest); err != nil {
			return written, err
		}
		written = append(written, dest)
	}
	return written, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

// DestinationPath returns exportRoot/<group>/<lang>.lproj/<name>, where group
// and name are the last two slash-delimited segments of original.
func DestinationPath(exportRoot, original, lang string) (string, error) {
	parts := strings.Split(original, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("original %q has no group and file name", original)
	}
	group, name := parts[len(parts)-2], parts[len(parts)-1]
	return filepath.Join(exportRoot, group, lproj.Dir(lang), name), nil
}

// BuildStrings converts the translation units of f into a resource file.
//
// A unit is emitted only with exactly one source and exactly one target.
// When baseLocale is set the source doubles as the target, so untranslated
// units are emitted too. A single note becomes the entry comment.
func BuildStrings(f *xliff.File, baseLocale, raw bool) *stringsfile.File {
	out := stringsfile.New(raw)
	for _, u := range f.Units() {
		src, ok := u.Source()
		if !ok {
			continue
		}
		tgt := src
		if !baseLocale {
			if tgt, ok = u.Target(); !ok {
				continue
			}
		}
		note, _ := u.Note()
		out.Add(src, tgt, note)
	}
	return out
}

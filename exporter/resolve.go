package exporter

import (
	"path/filepath"

	"github.com/minios-linux/lprojkit/locale"
	"github.com/minios-linux/lprojkit/xliff"
)

// ResolutionKind tells how a document's target language was determined.
type ResolutionKind int

const (
	// Resolved means a file section declared the target language.
	Resolved ResolutionKind = iota
	// ForcedBaseLocale means nothing was declared and the document lives in
	// the base locale's directory; the language is the short base code.
	ForcedBaseLocale
	// MissingTarget means the language could not be determined.
	MissingTarget
)

func (k ResolutionKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case ForcedBaseLocale:
		return "forced-base-locale"
	case MissingTarget:
		return "missing-target"
	}
	return "unknown"
}

// Resolution is the outcome of ResolveLanguage. Lang is empty for MissingTarget.
type Resolution struct {
	Kind ResolutionKind
	Lang string
}

// ResolveLanguage determines the target language for a whole document.
//
// The first file section's target-language applies to the whole document.
// When no section declares one, the document is assigned the short code of
// baseLocale ("en" for "en-US") if the per-language directory holding it is
// named after baseLocale. A document whose first section is undeclared but a
// later one is declared is never resolved.
func ResolveLanguage(doc *xliff.Document, docPath, baseLocale string) Resolution {
	if lang := doc.DeclaredTargetLanguage(); lang != "" {
		return Resolution{Kind: Resolved, Lang: lang}
	}
	if !doc.AnyTargetLanguage() && isBaseLocaleDocument(docPath, baseLocale) {
		return Resolution{Kind: ForcedBaseLocale, Lang: locale.Base(baseLocale)}
	}
	return Resolution{Kind: MissingTarget}
}

// isBaseLocaleDocument reports whether the directory containing docPath is
// the base locale's directory, e.g. "l10n/en-US/firefox-ios.xliff".
func isBaseLocaleDocument(docPath, baseLocale string) bool {
	dir := filepath.Base(filepath.Dir(docPath))
	return locale.Equal(dir, baseLocale)
}

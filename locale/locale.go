// Package locale provides language-tag helpers shared by the exporter and the
// CLI: canonical spelling, base language codes and display names.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Canonicalize returns the canonical BCP 47 spelling of lang, accepting
// underscores and any letter case ("pt_br" -> "pt-BR"). Codes that do not
// parse are returned trimmed but otherwise unchanged.
func Canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return normalized
	}
	return tag.String()
}

// Base returns the short language code of lang ("en-US" -> "en").
// Unparseable codes yield the part before the first separator, lowercased.
func Base(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	tag, err := language.Parse(normalized)
	if err != nil {
		head, _, _ := strings.Cut(normalized, "-")
		return strings.ToLower(head)
	}
	base, _ := tag.Base()
	return base.String()
}

// Equal reports whether a and b name the same language tag, ignoring case
// and separator style.
func Equal(a, b string) bool {
	ca, cb := Canonicalize(a), Canonicalize(b)
	return ca != "" && strings.EqualFold(ca, cb)
}

// Name returns the native display name of lang ("fr" -> "français"), or lang
// itself when the code is unknown.
func Name(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	tag, err := language.Parse(normalized)
	if err != nil {
		return lang
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return lang
}

// Package i18n holds the message catalogs for lprojkit's command help and
// run summaries ("Export finished", "%d files written", ...).
//
// Catalogs live in locales/<lang>/LC_MESSAGES/lprojkit.po and are compiled
// into the binary. They only cover the tool's own output: the .strings files
// it generates are never passed through here.
package i18n

import (
	"embed"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed all:locales
var locales embed.FS

const domain = "lprojkit"

var po *gotext.Locale

// Init selects the catalog for lang, or for the environment's language when
// lang is empty. Unknown languages leave every message untranslated.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}
	po = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	po.AddDomain(domain)
	po.SetDomain(domain)
}

// T returns the translation of msgid, or msgid itself.
func T(msgid string) string {
	if po == nil {
		return msgid
	}
	return po.Get(msgid)
}

// N picks the plural form of a counted message such as "%d file written".
// The count still has to be formatted in by the caller.
func N(singular, plural string, n int) string {
	if po == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return po.GetN(singular, plural, n)
}

// Languages lists the languages with an embedded catalog, sorted.
func Languages() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := fs.Stat(locales, "locales/"+e.Name()+"/LC_MESSAGES/"+domain+".po"); err == nil {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// detectLanguage follows gettext's lookup order: LANGUAGE (first entry of
// the list), LC_ALL, LC_MESSAGES, LANG. "C" and "POSIX" mean untranslated.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// "ru_RU.UTF-8" and "sr_RS@latin" -> "ru_RU", "sr_RS"
		val, _, _ = strings.Cut(val, ".")
		val, _, _ = strings.Cut(val, "@")
		switch val {
		case "", "C", "POSIX":
			continue
		}
		return val
	}
	return "en"
}

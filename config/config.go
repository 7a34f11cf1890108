// Package config holds the exporter settings: which interchange documents to
// read, which resource files to produce and how the base locale is handled.
//
// Settings come from built-in defaults (the Firefox for iOS layout), then an
// optional .lprojkit.yaml file, then command-line overrides.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultProduct is the interchange document base name (<product>.xliff).
const DefaultProduct = "firefox-ios"

// DefaultBaseLocale is the locale whose resource values equal the source strings.
const DefaultBaseLocale = "en-US"

// DefaultFiles are the recognized "original" identifiers.
var DefaultFiles = []string{
	"Client/Info.plist",
	"Client/Localizable.strings",
	"Client/search.strings",
	"Extensions/SendTo/Localizable.strings",
	"Extensions/ShareTo/Localizable.strings",
}

// DefaultTargets are the build targets whose .lproj bundles are listed.
var DefaultTargets = []string{"Client", "SendTo", "ShareTo"}

// Config is the resolved exporter configuration.
type Config struct {
	// Product is the document base name looked up in each language directory.
	Product string `yaml:"product" validate:"required,excludesall=/"`
	// BaseLocale is the per-language directory name of the base locale.
	BaseLocale string `yaml:"base_locale" validate:"required,bcp47_language_tag"`
	// Files is the allow-list of original identifiers, matched exactly.
	Files []string `yaml:"files" validate:"required,min=1,dive,required,contains=/"`
	// Targets are the build target names, one directory each in the export root.
	Targets []string `yaml:"targets" validate:"dive,required,excludesall=/"`
	// EscapeValues escapes quotes and backslashes in written resource files.
	EscapeValues bool `yaml:"escape_values"`
	// LanguageMap renames resolved languages before they become .lproj names.
	LanguageMap map[string]string `yaml:"language_map,omitempty" validate:"dive,keys,required,endkeys,required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Product:      DefaultProduct,
		BaseLocale:   DefaultBaseLocale,
		Files:        slices.Clone(DefaultFiles),
		Targets:      slices.Clone(DefaultTargets),
		EscapeValues: true,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports the first failures in a
// single error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q check (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// FileSet returns the allow-list as a set.
func (c *Config) FileSet() map[string]bool {
	set := make(map[string]bool, len(c.Files))
	for _, f := range c.Files {
		set[f] = true
	}
	return set
}

// MapLanguage applies LanguageMap to lang.
func (c *Config) MapLanguage(lang string) string {
	if mapped, ok := c.LanguageMap[lang]; ok {
		return mapped
	}
	return lang
}

// DocumentName returns the file name of an interchange document.
func (c *Config) DocumentName() string {
	return c.Product + ".xliff"
}

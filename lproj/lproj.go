// Package lproj discovers the localized resource bundles produced by the
// exporter, one <lang>.lproj directory per language under each build target:
//
//	export_root/Client/fr.lproj/Localizable.strings
//	export_root/ShareTo/fr.lproj/Localizable.strings
//
// This is the directory contract a build-project registrar consumes.
package lproj

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Suffix is the extension of a localized bundle directory.
const Suffix = ".lproj"

// Bundle is one <lang>.lproj directory.
type Bundle struct {
	// Target is the build target (the parent directory name).
	Target string
	// Lang is the directory name without the .lproj suffix.
	Lang string
	// Path is the bundle directory path.
	Path string
	// Files are the regular files inside the bundle, sorted by name.
	Files []string
}

// Dir returns the bundle directory name for lang ("fr" -> "fr.lproj").
func Dir(lang string) string { return lang + Suffix }

// Discover returns the bundles matching exportRoot/<target>/*.lproj, sorted
// by language. A missing target directory yields no bundles.
func Discover(fsys afero.Fs, exportRoot, target string) ([]Bundle, error) {
	pattern := filepath.Join(exportRoot, target, "*"+Suffix)
	matches, err := afero.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", pattern, err)
	}

	var bundles []Bundle
	for _, m := range matches {
		isDir, err := afero.IsDir(fsys, m)
		if err != nil || !isDir {
			continue
		}
		files, err := listFiles(fsys, m)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, Bundle{
			Target: target,
			Lang:   strings.TrimSuffix(filepath.Base(m), Suffix),
			Path:   m,
			Files:  files,
		})
	}
	sort.Slice(bundles, func(i, j int) bool { return bundles[i].Lang < bundles[j].Lang })
	return bundles, nil
}

// DiscoverAll runs Discover for each target, keyed by target name.
func DiscoverAll(fsys afero.Fs, exportRoot string, targets []string) (map[string][]Bundle, error) {
	all := make(map[string][]Bundle, len(targets))
	for _, t := range targets {
		bundles, err := Discover(fsys, exportRoot, t)
		if err != nil {
			return nil, err
		}
		all[t] = bundles
	}
	return all, nil
}

func listFiles(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Languages returns the distinct languages across bundles, sorted.
func Languages(bundles map[string][]Bundle) []string {
	seen := make(map[string]bool)
	var langs []string
	for _, bs := range bundles {
		for _, b := range bs {
			if !seen[b.Lang] {
				seen[b.Lang] = true
				langs = append(langs, b.Lang)
			}
		}
	}
	sort.Strings(langs)
	return langs
}

// Package xliff implements reading of XLIFF 1.2 translation interchange documents.
//
// Only the subset needed to produce native resource files is modelled:
//
//	<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2">
//	  <file original="Client/Localizable.strings" source-language="en" target-language="fr">
//	    <body>
//	      <trans-unit id="Cancel">
//	        <source>Cancel</source>
//	        <target>Annuler</target>
//	        <note>Button label</note>
//	      </trans-unit>
//	    </body>
//	  </file>
//	</xliff>
//
// Elements are matched by namespace: a document whose elements are not in the
// XLIFF 1.2 namespace parses successfully but has no file sections.
//
// Sources, targets and notes are kept as slices so callers can tell an
// untranslated unit (no target) from a malformed one (several targets).
package xliff

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/spf13/afero"
)

// Namespace is the XLIFF 1.2 namespace URI.
const Namespace = "urn:oasis:names:tc:xliff:document:1.2"

// ---------------------------------------------------------------------------
// Data model
// ---------------------------------------------------------------------------

// Document is a parsed XLIFF document holding the translations of one language.
type Document struct {
	// Version is the xliff version attribute ("1.2").
	Version string `xml:"version,attr"`
	// Files are the file sections in document order.
	Files []*File `xml:"urn:oasis:names:tc:xliff:document:1.2 file"`
}

// File is one <file> section: a single logical resource file.
type File struct {
	// Original is the slash-delimited virtual path, e.g. "Client/Localizable.strings".
	Original string `xml:"original,attr"`
	// SourceLanguage is the source-language attribute.
	SourceLanguage string `xml:"source-language,attr"`
	// TargetLanguage is the target-language attribute. Empty for the base locale.
	TargetLanguage string `xml:"target-language,attr"`
	// Datatype is the datatype attribute (informational).
	Datatype string `xml:"datatype,attr"`
	// Body holds the translation units.
	Body Body `xml:"urn:oasis:names:tc:xliff:document:1.2 body"`
}

// Body is the <body> element of a file section.
type Body struct {
	TransUnits []*TransUnit `xml:"urn:oasis:names:tc:xliff:document:1.2 trans-unit"`
}

// TransUnit is one translatable string.
type TransUnit struct {
	ID      string    `xml:"id,attr"`
	Sources []Segment `xml:"urn:oasis:names:tc:xliff:document:1.2 source"`
	Targets []Segment `xml:"urn:oasis:names:tc:xliff:document:1.2 target"`
	Notes   []Segment `xml:"urn:oasis:names:tc:xliff:document:1.2 note"`
}

// Segment is the character content of a <source>, <target> or <note>.
type Segment struct {
	Text string `xml:",chardata"`
}

// Units returns the translation units of the file section in document order.
func (f *File) Units() []*TransUnit { return f.Body.TransUnits }

// Source returns the single source text. ok is false unless exactly one
// <source> is present.
func (u *TransUnit) Source() (string, bool) { return single(u.Sources) }

// Target returns the single target text. ok is false unless exactly one
// <target> is present.
func (u *TransUnit) Target() (string, bool) { return single(u.Targets) }

// Note returns the single note text. ok is false unless exactly one <note>
// is present.
func (u *TransUnit) Note() (string, bool) { return single(u.Notes) }

func single(segs []Segment) (string, bool) {
	if len(segs) != 1 {
		return "", false
	}
	return segs[0].Text, true
}

// DeclaredTargetLanguage returns the target-language of the first file
// section, or "" when there is none or it has no such attribute.
func (d *Document) DeclaredTargetLanguage() string {
	if len(d.Files) == 0 {
		return ""
	}
	return d.Files[0].TargetLanguage
}

// AnyTargetLanguage reports whether some file section declares a
// target-language.
func (d *Document) AnyTargetLanguage() bool {
	for _, f := range d.Files {
		if f.TargetLanguage != "" {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// ParseFile reads and parses the XLIFF document at path on fsys.
func ParseFile(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses XLIFF document data.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

package xliff

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2" version="1.2">
  <file original="Client/Localizable.strings" source-language="en" target-language="fr" datatype="plaintext">
    <header><tool tool-id="com.apple.dt.xcode" tool-name="Xcode"/></header>
    <body>
      <trans-unit id="Cancel">
        <source>Cancel</source>
        <target>Annuler</target>
        <note>Button label</note>
      </trans-unit>
      <trans-unit id="Bookmarks">
        <source>Bookmarks</source>
      </trans-unit>
      <trans-unit id="Broken">
        <source>Broken</source>
        <target>Cassé</target>
        <target>Brisé</target>
      </trans-unit>
    </body>
  </file>
  <file original="Extensions/ShareTo/Localizable.strings" source-language="en" target-language="fr">
    <body/>
  </file>
</xliff>`

// ---------------------------------------------------------------------------
// Parse tests
// ---------------------------------------------------------------------------

func TestParse_FilesAndAttributes(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "1.2", doc.Version)
	require.Len(t, doc.Files, 2)

	f := doc.Files[0]
	assert.Equal(t, "Client/Localizable.strings", f.Original)
	assert.Equal(t, "en", f.SourceLanguage)
	assert.Equal(t, "fr", f.TargetLanguage)
	assert.Equal(t, "plaintext", f.Datatype)
	assert.Len(t, f.Units(), 3)
	assert.Empty(t, doc.Files[1].Units())
}

func TestParse_UnitAccessors(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	units := doc.Files[0].Units()

	src, ok := units[0].Source()
	assert.True(t, ok)
	assert.Equal(t, "Cancel", src)
	tgt, ok := units[0].Target()
	assert.True(t, ok)
	assert.Equal(t, "Annuler", tgt)
	note, ok := units[0].Note()
	assert.True(t, ok)
	assert.Equal(t, "Button label", note)

	// untranslated
	_, ok = units[1].Target()
	assert.False(t, ok)
	_, ok = units[1].Note()
	assert.False(t, ok)

	// two targets
	_, ok = units[2].Target()
	assert.False(t, ok)
	assert.Len(t, units[2].Targets, 2)
}

func TestParse_ForeignNamespaceHasNoFiles(t *testing.T) {
	data := `<xliff version="1.2"><file original="Client/Localizable.strings" target-language="fr"/></xliff>`
	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, doc.Files)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2"><file>`))
	assert.Error(t, err)
}

func TestParse_EntitiesAreDecoded(t *testing.T) {
	data := `<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2"><file original="a/b"><body>
<trans-unit id="x"><source>Tom &amp; &quot;Jerry&quot;</source><target>Tom &amp; Jerry</target></trans-unit>
</body></file></xliff>`
	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	src, ok := doc.Files[0].Units()[0].Source()
	require.True(t, ok)
	assert.Equal(t, `Tom & "Jerry"`, src)
}

// ---------------------------------------------------------------------------
// Language declaration
// ---------------------------------------------------------------------------

func TestDeclaredTargetLanguage(t *testing.T) {
	cases := []struct {
		name string
		doc  *Document
		want string
	}{
		{name: "no files", doc: &Document{}, want: ""},
		{name: "first file", doc: &Document{Files: []*File{{TargetLanguage: "de"}, {TargetLanguage: "fr"}}}, want: "de"},
		{name: "later section ignored", doc: &Document{Files: []*File{{}, {TargetLanguage: "fr"}}}, want: ""},
		{name: "none declared", doc: &Document{Files: []*File{{}, {}}}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.doc.DeclaredTargetLanguage())
		})
	}
}

func TestAnyTargetLanguage(t *testing.T) {
	assert.False(t, (&Document{}).AnyTargetLanguage())
	assert.False(t, (&Document{Files: []*File{{}, {}}}).AnyTargetLanguage())
	assert.True(t, (&Document{Files: []*File{{}, {TargetLanguage: "fr"}}}).AnyTargetLanguage())
}

// ---------------------------------------------------------------------------
// ParseFile
// ---------------------------------------------------------------------------

func TestParseFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/l10n/fr/firefox-ios.xliff", []byte(sampleDoc), 0644))

	doc, err := ParseFile(fsys, "/l10n/fr/firefox-ios.xliff")
	require.NoError(t, err)
	assert.Len(t, doc.Files, 2)

	_, err = ParseFile(fsys, "/l10n/de/firefox-ios.xliff")
	assert.ErrorContains(t, err, "reading /l10n/de/firefox-ios.xliff")
}

package stringsfile

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Marshal
// ---------------------------------------------------------------------------

func TestMarshal_EntryWithComment(t *testing.T) {
	f := New(false)
	f.Add("Cancel", "Annuler", "Button label")
	f.Add("OK", "OK", "")

	want := "/* Button label */\n\"Cancel\" = \"Annuler\";\n\n\"OK\" = \"OK\";\n\n"
	assert.Equal(t, want, string(f.Marshal()))
}

func TestMarshal_Empty(t *testing.T) {
	assert.Empty(t, New(false).Marshal())
}

func TestMarshal_Escaping(t *testing.T) {
	cases := []struct {
		name string
		raw  bool
		want string
	}{
		{name: "escaped", raw: false, want: `"Say \"hi\"" = "C:\\dir";` + "\n\n"},
		{name: "raw", raw: true, want: `"Say "hi"" = "C:\dir";` + "\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := New(tc.raw)
			f.Add(`Say "hi"`, `C:\dir`, "")
			assert.Equal(t, tc.want, string(f.Marshal()))
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain", Escape("plain"))
	assert.Equal(t, `a\"b\\c`, Escape(`a"b\c`))
	assert.Equal(t, `Über \"x\"`, Escape(`Über "x"`))
}

// ---------------------------------------------------------------------------
// Parse
// ---------------------------------------------------------------------------

func TestParse_Basic(t *testing.T) {
	data := []byte(`/* Button label */
"Cancel" = "Annuler";

// line comment
"Quote" = "Il a dit \"oui\"\n";
"Plain"="Simple";
`)
	f, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 3, f.Len())

	e := f.Entries()
	assert.Equal(t, Entry{Key: "Cancel", Value: "Annuler", Comment: "Button label"}, e[0])
	assert.Equal(t, Entry{Key: "Quote", Value: "Il a dit \"oui\"\n", Comment: "line comment"}, e[1])
	assert.Equal(t, Entry{Key: "Plain", Value: "Simple"}, e[2])
	assert.Equal(t, []string{"Cancel", "Quote", "Plain"}, f.Keys())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"missing semicolon":     `"a" = "b"`,
		"missing equals":        `"a" "b";`,
		"unterminated string":   `"a" = "b`,
		"unterminated comment":  `/* never closed`,
		"garbage":               `a = b;`,
		"error reports line no": "\n\n\"a\" = ;",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("\n\n\"a\" = ;"))
	assert.ErrorContains(t, err, "line 3")
}

func TestMarshal_CommentTerminator(t *testing.T) {
	f := New(false)
	f.Add("Help", "Aide", "see */ here")
	assert.Equal(t, "/* see * / here */\n\"Help\" = \"Aide\";\n\n", string(f.Marshal()))

	got, err := Parse(f.Marshal())
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "see * / here", got.Entries()[0].Comment)

	raw := New(true)
	raw.Add("Help", "Aide", "see */ here")
	assert.Equal(t, "/* see */ here */\n\"Help\" = \"Aide\";\n\n", string(raw.Marshal()))
}

func TestRoundTrip(t *testing.T) {
	f := New(false)
	f.Add("Cancel", "Annuler", "Button label")
	f.Add(`Path "x"`, `C:\tmp`, "")

	got, err := Parse(f.Marshal())
	require.NoError(t, err)
	assert.Equal(t, f.Entries(), got.Entries())
}

func TestGet_FirstDuplicateWins(t *testing.T) {
	f := New(false)
	f.Add("k", "one", "")
	f.Add("k", "two", "")

	v, ok := f.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 2, f.Len())

	_, ok = f.Get("missing")
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// File I/O
// ---------------------------------------------------------------------------

func TestWriteFile_CreatesDirsAndTruncates(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := "/out/Client/fr.lproj/Localizable.strings"
	require.NoError(t, afero.WriteFile(fsys, "/out/Client/fr.lproj/Localizable.strings.keep", nil, 0644))

	long := New(false)
	long.Add("a", "1", "")
	long.Add("b", "2", "")
	require.NoError(t, long.WriteFile(fsys, path))

	short := New(false)
	short.Add("c", "3", "")
	require.NoError(t, short.WriteFile(fsys, path))

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "\"c\" = \"3\";\n\n", string(data))

	parsed, err := ParseFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, parsed.Keys())
}

func TestIsStringsFile(t *testing.T) {
	assert.True(t, IsStringsFile("Localizable.strings"))
	assert.False(t, IsStringsFile("Info.plist"))
}

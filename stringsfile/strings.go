// Package stringsfile implements reading and writing of Apple .strings resource files.
//
// Format: one "key" = "value"; entry per line, optionally preceded by a
// /* comment */ line. Entries are separated by a blank line on output:
//
//	/* Button label */
//	"Cancel" = "Annuler";
//
// Block (/* */) and line (//) comments are accepted on input. Only the comment
// immediately preceding an entry is kept, as that entry's note.
//
// Keys and values are escaped on output (\ and ") unless the File is in raw
// mode, which writes text byte-for-byte for compatibility with legacy output.
package stringsfile

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ---------------------------------------------------------------------------
// File model
// ---------------------------------------------------------------------------

// Entry is a single key/value pair with an optional comment.
type Entry struct {
	Key     string
	Value   string
	Comment string
}

// File represents a .strings file. Entries keep insertion order and
// duplicate keys are allowed.
type File struct {
	entries []Entry
	// Raw disables escaping of keys and values on Marshal.
	Raw bool
}

// New returns an empty file. raw selects byte-for-byte output.
func New(raw bool) *File {
	return &File{Raw: raw}
}

// Add appends an entry.
func (f *File) Add(key, value, comment string) {
	f.entries = append(f.entries, Entry{Key: key, Value: value, Comment: comment})
}

// Entries returns the entries in order.
func (f *File) Entries() []Entry { return f.entries }

// Len returns the number of entries.
func (f *File) Len() int { return len(f.entries) }

// Get returns the value of the first entry with key.
func (f *File) Get(key string) (string, bool) {
	for _, e := range f.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys returns all keys in order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// ---------------------------------------------------------------------------
// Serialization
// ---------------------------------------------------------------------------

// Escape escapes backslashes and double quotes for use inside a quoted
// .strings literal.
func Escape(s string) string {
	if !strings.ContainsAny(s, `\"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (f *File) quote(s string) string {
	if f.Raw {
		return s
	}
	return Escape(s)
}

// comment keeps a note from closing its block comment early.
func (f *File) comment(s string) string {
	if f.Raw {
		return s
	}
	return strings.ReplaceAll(s, "*/", "* /")
}

// Marshal serialises the file to .strings format.
func (f *File) Marshal() []byte {
	var buf bytes.Buffer
	for _, e := range f.entries {
		if e.Comment != "" {
			buf.WriteString("/* ")
			buf.WriteString(f.comment(e.Comment))
			buf.WriteString(" */\n")
		}
		fmt.Fprintf(&buf, "\"%s\" = \"%s\";\n\n", f.quote(e.Key), f.quote(e.Value))
	}
	return buf.Bytes()
}

// WriteFile serialises f and writes it to path on fsys, creating parent
// directories and truncating any existing file.
func (f *File) WriteFile(fsys afero.Fs, path string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fsys, path, f.Marshal(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// ParseFile reads and parses a .strings file from fsys.
func ParseFile(fsys afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse parses .strings content. Escape sequences \" \\ \n \t \r are decoded.
func Parse(data []byte) (*File, error) {
	p := &parser{src: string(data), line: 1}
	f := New(false)
	var comment string
	for {
		p.skipSpace()
		if p.eof() {
			return f, nil
		}
		switch {
		case p.hasPrefix("/*"):
			c, err := p.blockComment()
			if err != nil {
				return nil, err
			}
			comment = c
		case p.hasPrefix("//"):
			comment = p.lineComment()
		case p.peek() == '"':
			key, err := p.quoted()
			if err != nil {
				return nil, err
			}
			if err := p.expect('='); err != nil {
				return nil, err
			}
			value, err := p.quoted()
			if err != nil {
				return nil, err
			}
			if err := p.expect(';'); err != nil {
				return nil, err
			}
			f.Add(key, value, comment)
			comment = ""
		default:
			return nil, p.errorf("unexpected %q", p.peek())
		}
	}
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) hasPrefix(s string) bool { return strings.HasPrefix(p.src[p.pos:], s) }

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *parser) advance(n int) {
	p.line += strings.Count(p.src[p.pos:p.pos+n], "\n")
	p.pos += n
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.advance(1)
		default:
			return
		}
	}
}

func (p *parser) blockComment() (string, error) {
	end := strings.Index(p.src[p.pos+2:], "*/")
	if end < 0 {
		return "", p.errorf("unterminated comment")
	}
	text := p.src[p.pos+2 : p.pos+2+end]
	p.advance(end + 4)
	return strings.TrimSpace(text), nil
}

func (p *parser) lineComment() string {
	end := strings.IndexByte(p.src[p.pos:], '\n')
	if end < 0 {
		end = len(p.src) - p.pos
	}
	text := p.src[p.pos+2 : p.pos+end]
	p.advance(end)
	return strings.TrimSpace(text)
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.eof() || p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.advance(1)
	p.skipSpace()
	return nil
}

func (p *parser) quoted() (string, error) {
	if p.eof() || p.peek() != '"' {
		return "", p.errorf("expected '\"'")
	}
	p.advance(1)
	var b strings.Builder
	for !p.eof() {
		c := p.peek()
		switch c {
		case '"':
			p.advance(1)
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", p.errorf("unterminated escape")
			}
			switch e := p.src[p.pos+1]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(e)
			}
			p.advance(2)
		default:
			b.WriteByte(c)
			p.advance(1)
		}
	}
	return "", p.errorf("unterminated string")
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// IsStringsFile reports whether name has the .strings extension.
func IsStringsFile(name string) bool {
	return filepath.Ext(name) == ".strings"
}

// Package logging builds the zap logger used by lprojkit.
//
// Output mimics a plain CLI log rather than a service log: no timestamps or
// caller, just a level tag and the message, followed by any fields.
//
//	[INFO] Processing l10n/fr/firefox-ios.xliff
//	[WARN] Skipping l10n/xx/firefox-ios.xliff: no target language  {"document": "..."}
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorGray   = "\033[0;90m"
)

type options struct {
	color   bool
	verbose bool
}

// Option configures New.
type Option func(*options)

// WithColor enables or disables ANSI colors in level tags.
func WithColor(enabled bool) Option {
	return func(o *options) { o.color = enabled }
}

// WithVerbose enables debug output.
func WithVerbose(enabled bool) Option {
	return func(o *options) { o.verbose = enabled }
}

// New returns a sugared logger writing to w. Colors are on unless NO_COLOR
// is set or WithColor(false) is given.
func New(w io.Writer, opts ...Option) *zap.SugaredLogger {
	o := &options{color: os.Getenv("NO_COLOR") == ""}
	for _, opt := range opts {
		opt(o)
	}

	level := zapcore.InfoLevel
	if o.verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(newEncoder(o.color), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func newEncoder(color bool) zapcore.Encoder {
	levelEncoder := plainLevel
	if color {
		levelEncoder = colorLevel
	}
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      levelEncoder,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	})
}

// Tag returns the bracketed tag for a level ("[INFO]", "[WARN]", ...).
func Tag(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "[DEBUG]"
	case zapcore.InfoLevel:
		return "[INFO]"
	case zapcore.WarnLevel:
		return "[WARN]"
	default:
		return "[ERROR]"
	}
}

func tagColor(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return colorGray
	case zapcore.InfoLevel:
		return colorBlue
	case zapcore.WarnLevel:
		return colorYellow
	default:
		return colorRed
	}
}

func plainLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Tag(l))
}

func colorLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(tagColor(l) + Tag(l) + colorReset)
}

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WithColor(false))

	log.Infof("Processing %s", "fr/firefox-ios.xliff")
	log.Warnw("Skipping document", "document", "xx/firefox-ios.xliff")
	log.Debug("hidden")
	log.Error("boom")

	want := "[INFO] Processing fr/firefox-ios.xliff\n" +
		"[WARN] Skipping document {\"document\": \"xx/firefox-ios.xliff\"}\n" +
		"[ERROR] boom\n"
	assert.Equal(t, want, buf.String())
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WithColor(false), WithVerbose(true))
	log.Debug("shown")
	assert.Equal(t, "[DEBUG] shown\n", buf.String())
}

func TestNew_Color(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WithColor(true))
	log.Warn("careful")
	assert.Equal(t, colorYellow+"[WARN]"+colorReset+" careful\n", buf.String())
}

func TestNew_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	New(&buf).Info("hi")
	assert.Equal(t, "[INFO] hi\n", buf.String())
}

func TestTag(t *testing.T) {
	assert.Equal(t, "[DEBUG]", Tag(zapcore.DebugLevel))
	assert.Equal(t, "[INFO]", Tag(zapcore.InfoLevel))
	assert.Equal(t, "[WARN]", Tag(zapcore.WarnLevel))
	assert.Equal(t, "[ERROR]", Tag(zapcore.ErrorLevel))
	assert.Equal(t, "[ERROR]", Tag(zapcore.FatalLevel))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Info("discarded") })
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestComponentFieldsAreKept(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Component("tab_bar").With("placement", "top").Debug("button added", "key", 3)

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "button added", entries[0]["message"])
	assert.Equal(t, "tab_bar", entries[0]["component"])
	assert.Equal(t, "top", entries[0]["placement"])
	assert.EqualValues(t, 3, entries[0]["key"])
	assert.Equal(t, "debug", entries[0]["level"])
}

func TestLevelFiltersEntries(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Writer: buf})
	require.NoError(t, err)

	log.Trace("routed key")
	log.Debug("layout pass")
	log.Info("started")
	log.Warn("channel full")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "channel full", entries[0]["message"])
	assert.True(t, log.Enabled(zerolog.ErrorLevel))
	assert.False(t, log.Enabled(zerolog.InfoLevel))
}

func TestTraceLevelWritesEverything(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "trace", Writer: buf})
	require.NoError(t, err)

	log.Trace("event", "event", "key(enter)", "consumed", true)

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "trace", entries[0]["level"])
	assert.Equal(t, true, entries[0]["consumed"])
}

func TestErrorAttachesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "demo failed", "command", "demo")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0]["error"])
	assert.Equal(t, "demo", entries[0]["command"])
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("starting demo", "tabs", 3)

	out := buf.String()
	assert.Contains(t, out, "starting demo")
	assert.Contains(t, out, "tabs=3")
	assert.NotContains(t, out, "{")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" Debug ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("chatty")
	require.Error(t, err)

	_, err = New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilLoggerIsSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	assert.False(t, log.Enabled(zerolog.ErrorLevel))
	assert.NotPanics(t, func() {
		log.Component("tab_view").With("k", "v").Trace("ignored")
		log.Debug("ignored", "k", 1)
		log.Info("ignored")
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
	})
}

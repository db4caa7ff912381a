package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"config": "frameworks.yaml", "options": 3})
	log.Info("options loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "options loaded", entry["message"])
	require.Equal(t, "frameworks.yaml", entry["config"])
	require.EqualValues(t, 3, entry["options"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.DebugFields("nor this", map[string]any{"open": true})
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.DebugEnabled())
}

func TestLoggerComponentAndDebugFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	require.True(t, log.DebugEnabled())

	log.WithComponent("selectfield", "abc").DebugFields("transition", map[string]any{"open": true, "highlighted": 1})

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "selectfield", entry["component"])
	assert.Equal(t, "abc", entry["instance"])
	assert.Equal(t, true, entry["open"])
	assert.EqualValues(t, 1, entry["highlighted"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"source": "gitrefs"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "gitrefs", entry["source"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("x")
		nilLogger.Warn("x")
		nilLogger.Error(errors.New("x"), "x")
		nilLogger.DebugFields("x", nil)
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
		require.Nil(t, nilLogger.WithComponent("a", "b"))
	})

	require.NotPanics(t, func() { Nop().Warn("dropped") })
}

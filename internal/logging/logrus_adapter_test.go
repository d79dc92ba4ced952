package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureAdapter builds an adapter writing JSON lines into buf so tests can
// assert on the emitted fields.
func captureAdapter(buf *bytes.Buffer) Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return NewLogrusAdapterFromLogger(logger)
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestLogrusAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	logger := captureAdapter(&buf)

	logger.Info("categorized",
		Field{Key: FieldCategory, Value: "Housing"},
		Field{Key: FieldCount, Value: 3},
	)

	entry := lastLine(t, &buf)
	assert.Equal(t, "categorized", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Housing", entry[FieldCategory])
	assert.Equal(t, float64(3), entry[FieldCount])
}

func TestLogrusAdapterWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := captureAdapter(&buf)

	child := logger.WithField("component", "test")
	child.Debug("hello")

	entry := lastLine(t, &buf)
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "debug", entry["level"])

	// The parent must not inherit the child's field.
	logger.Info("plain")
	entry = lastLine(t, &buf)
	_, ok := entry["component"]
	assert.False(t, ok)
}

func TestLogrusAdapterWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := captureAdapter(&buf)

	logger.WithError(errors.New("boom")).Error("it failed")

	entry := lastLine(t, &buf)
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "error", entry["level"])
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	logger := NewLogrusAdapter("not-a-level", "text")
	require.NotNil(t, logger)
	// Falls back to info without panicking.
	logger.Info("still works")
}

func TestGetLoggerSingleton(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
}

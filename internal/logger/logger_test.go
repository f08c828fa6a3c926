package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	Init()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.NotNil(t, L())
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	Setup(Options{Level: "loud", Format: "json"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetup_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fitclass.log")
	Setup(Options{Level: "debug", Format: "json", File: path})
	t.Cleanup(func() { Setup(Options{Level: "info", Format: "json"}) })

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	Info("written to file")
	assert.FileExists(t, path)
}

func TestInfo(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("test message", "class_id", 7, "op", "create")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["class_id"])
	assert.Equal(t, "create", entry["op"])
}

func TestError(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	SetOutput(&buf)

	Error("test error", "error", errors.New("boom"))

	output := buf.String()
	assert.Contains(t, output, "test error")
	assert.Contains(t, output, "boom")
	assert.Contains(t, output, `"level":"error"`)
}

func TestDebug_SuppressedAtInfo(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden")
	Debugf("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestFormatted(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	var buf bytes.Buffer
	SetOutput(&buf)

	Infof("server on %s", "8080")
	Errorf("failed %d times", 3)
	Debugf("debug %s", "on")

	output := buf.String()
	assert.Contains(t, output, "server on 8080")
	assert.Contains(t, output, "failed 3 times")
	assert.Contains(t, output, "debug on")
}

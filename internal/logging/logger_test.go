package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"info":    logrus.InfoLevel,
		"trace":   logrus.TraceLevel,
		"warn":    logrus.WarnLevel,
		"":        logrus.InfoLevel,
		"unknown": logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), in)
	}
}

func TestSetupWritesToFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)

	base := filepath.Join(t.TempDir(), "fittrack")
	Setup(LoggerSetupParams{LogFileName: base, LogLevel: "warn"})

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	logrus.Warn("water goal reached")
	logrus.Info("not written at warn level")

	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "water goal reached")
	assert.NotContains(t, string(data), "not written")
}

func TestConsoleIsStderr(t *testing.T) {
	assert.Equal(t, io.Writer(os.Stderr), console)
}

func TestSetupTeesToConsole(t *testing.T) {
	var buf bytes.Buffer
	prev := console
	console = &buf
	defer func() { console = prev }()
	defer logrus.SetOutput(os.Stderr)

	base := filepath.Join(t.TempDir(), "fittrack")
	Setup(LoggerSetupParams{LogFileName: base, LogToStderr: true, LogLevel: "info"})
	logrus.Info("steps updated")

	assert.Contains(t, buf.String(), "steps updated")
	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "steps updated")
}

func TestSetupWithoutFileUsesConsole(t *testing.T) {
	var buf bytes.Buffer
	prev := console
	console = &buf
	defer func() { console = prev }()
	defer logrus.SetOutput(os.Stderr)

	Setup(LoggerSetupParams{LogLevel: "info"})
	logrus.Info("console only")
	assert.Contains(t, buf.String(), "console only")
}

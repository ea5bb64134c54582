package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLog(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
	}{
		{name: "prints by default"},
		{name: "prints with debug", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			var stderr bytes.Buffer

			log := New(&stdout, &stderr, tt.debug)
			log.Log("Line Coverage: 83.7%")

			assert.Equal(t, "Line Coverage: 83.7%\n", stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestLoggerDebugWritesToStderrWhenEnabled(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	log := New(&stdout, &stderr, true)
	log.Debug("mode: jacoco")
	log.Debugf("%s: %d", "bytes", 42)

	assert.True(t, log.DebugEnabled())
	assert.Empty(t, stdout.String())
	assert.Equal(t, "mode: jacoco\nbytes: 42\n", stderr.String())
}

func TestLoggerDebugDoesNotWriteWhenDisabled(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	log := New(&stdout, &stderr, false)
	log.Debug("mode: jacoco")
	log.Debugf("%s", "ignored")

	assert.False(t, log.DebugEnabled())
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLoggerErrorAlwaysWritesToStderr(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	log := New(&stdout, &stderr, false)
	log.Error("report not found")

	assert.Empty(t, stdout.String())
	assert.Equal(t, "report not found\n", stderr.String())
}

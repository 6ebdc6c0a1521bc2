package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestInfo_EmitsMessageAndFields(t *testing.T) {
	buf := captureOutput(t)

	Info("postgres connected", map[string]interface{}{"host": "localhost"})

	out := buf.String()
	assert.Contains(t, out, `"message":"postgres connected"`)
	assert.Contains(t, out, `"host":"localhost"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestError_EmitsWrappedError(t *testing.T) {
	buf := captureOutput(t)

	Error("close redis", errors.New("connection reset"))

	out := buf.String()
	assert.Contains(t, out, `"message":"close redis"`)
	assert.Contains(t, out, `"error":"connection reset"`)
	assert.Contains(t, out, `"level":"error"`)
}

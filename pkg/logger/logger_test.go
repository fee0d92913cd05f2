package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/pkg/logger"
)

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "pos-tracker", Out: &buf})
	l.Info().Str("item_id", "abc").Msg("hola")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hola", entry["message"])
	assert.Equal(t, "pos-tracker", entry["service"])
	assert.Equal(t, "abc", entry["item_id"])
}

func TestNew_NivelWarnFiltraInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})
	l.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())
}

func TestNew_InstalaLoggerGlobal(t *testing.T) {
	var buf bytes.Buffer
	logger.New(logger.Config{Env: "production", Level: "bogus", Out: &buf})
	log.Info().Msg("global")
	assert.Contains(t, buf.String(), "global", "nivel inválido cae a info y el global escribe en el mismo destino")
}

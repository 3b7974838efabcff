package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLoggerLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	initLogger(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Logger(context.Background()).Info().Msg("hidden")
	Logger(context.Background()).Warn().Msg("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")

	initLogger(&buf, "not-a-level")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

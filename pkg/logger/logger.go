package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// InitLogger installs the process wide logger. An unparsable level falls back to debug.
func InitLogger(level string) *zerolog.Logger {
	return initLogger(os.Stdout, level)
}

func initLogger(out io.Writer, level string) *zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}

	logger := zerolog.New(consoleWriter).
		With().
		Timestamp().
		Caller().
		Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

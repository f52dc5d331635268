package mock

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// Context carrying a debug level console logger, so log.Ctx(ctx) output
// from drivers and pollers shows up in test runs.
func Context(ctx context.Context) context.Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

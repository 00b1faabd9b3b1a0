package http

import (
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// retryLogger routes go-retryablehttp's own logs through zerolog.
type retryLogger struct {
	logger zerolog.Logger
}

var _ retryablehttp.LeveledLogger = retryLogger{}

// Error is only used for failed attempts, whose final outcome is logged by
// the client, so it is reported as a warning.
func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

// Debug is where retryablehttp reports every attempt, so it is demoted to
// trace to keep debug output to one line per logical request.
func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Trace().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

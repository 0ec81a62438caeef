package logger

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"todo/config"
	"todo/shared/constant"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	zerolog.DefaultContextLogger = &log.Logger

	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// WithRequestID stores the request id in ctx and attaches a child of the global
// logger carrying it, so zerolog.Ctx(ctx) tags every line with the request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyRequestID, requestID)

	return log.Logger.With().Str(constant.RequestIDLogFieldName, requestID).Logger().WithContext(ctx)
}

// RequestID returns the id stored by WithRequestID, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyRequestID).(string)

	return id
}

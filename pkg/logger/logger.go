package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Logger is the logging interface used across the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Opts struct {
	Env       string
	SentryURL string
}

type Impl struct {
	*slog.Logger
}

var _ Logger = (*Impl)(nil)

// New builds a logger that writes through zerolog (console in development,
// JSON elsewhere) and forwards errors to Sentry when a DSN is configured.
func New(opts Opts) *Impl {
	level := slog.LevelDebug
	var zl zerolog.Logger
	if opts.Env == "production" {
		level = slog.LevelInfo
		zl = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryURL != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryURL,
			Environment: opts.Env,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{Logger: slog.New(slogmulti.Fanout(handlers...))}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Impl {
	return &Impl{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

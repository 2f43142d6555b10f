// Package logging builds the slog loggers used across a tab and carries a
// request- or effect-scoped logger through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("effect", "load-cart")))
//	logging.FromContext(ctx).WarnContext(ctx, "retrying OCC request")
//
// Errors are logged with the operation, the ids involved and the full chain:
//
//	logger.ErrorContext(ctx, "cart merge failed",
//	    slog.String("operation", "cartmerge.merge"),
//	    slog.String("cart_id", cartID),
//	    slog.Any("error", err),
//	)
//
// Inbound requests get request_id and tab_id attached by the HTTP logging
// middleware; effect invocations get effect and seq from the effect pipeline.
// Every handler returned by New masks credentials and e-mail addresses.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is any name slog understands
// ("debug", "INFO", "warn+2"); anything else means info. format "text"
// selects the text handler, anything else JSON. Debug loggers add source
// locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

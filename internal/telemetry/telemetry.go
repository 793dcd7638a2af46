// Package telemetry adapts the engine's internal log/slog output to
// github.com/tliron/commonlog, the sink abstraction the teacher's LSP
// surface (lsp/server.go) already standardises on for glsp integration.
// Core packages (parse, optimize, validate, report) take a plain
// *slog.Logger and never import this package; only embedders that want
// their commonlog sink to receive engine diagnostics
// wire this adapter in via engine.WithLogger(telemetry.NewLogger(name)).
package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tliron/commonlog"
)

// handler is a slog.Handler that forwards every record to a named
// commonlog.Logger, collapsing structured attributes into the message text
// since commonlog's logging methods are message-template based rather
// than structured-field based.
type handler struct {
	logger commonlog.Logger
	attrs  []slog.Attr
	group  string
}

// NewLogger returns a *slog.Logger whose output is forwarded to
// commonlog.GetLogger(name), for embedders that centralise logging through
// commonlog (mirroring the teacher's own silencing call,
// commonlog.Configure(0, nil), in lsp/server.go — here the logger is
// actively used rather than silenced).
func NewLogger(name string) *slog.Logger {
	return slog.New(&handler{logger: commonlog.GetLogger(name)})
}

func (h *handler) Enabled(context.Context, slog.Level) bool { return true }

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		msg += fmt.Sprintf(" %s=%v", h.qualify(a.Key), a.Value.Any())
		return true
	})
	for _, a := range h.attrs {
		msg += fmt.Sprintf(" %s=%v", h.qualify(a.Key), a.Value.Any())
	}

	switch {
	case r.Level >= slog.LevelError:
		h.logger.Error(msg)
	case r.Level >= slog.LevelWarn:
		h.logger.Warning(msg)
	case r.Level >= slog.LevelInfo:
		h.logger.Info(msg)
	default:
		h.logger.Debug(msg)
	}
	return nil
}

func (h *handler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &handler{logger: h.logger, group: h.group}
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return next
}

func (h *handler) WithGroup(name string) slog.Handler {
	next := &handler{logger: h.logger, attrs: h.attrs, group: name}
	if h.group != "" {
		next.group = h.group + "." + name
	}
	return next
}

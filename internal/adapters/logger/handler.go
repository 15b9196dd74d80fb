// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/packlint/internal/ui/output"
	"go.trai.ch/packlint/internal/ui/style"
)

// PrettyHandler is a slog.Handler for the validator's terminal output. It
// renders the record message only, decorated with the same level markers and
// colors the report renderer uses. Structured attributes and groups are not
// rendered; machine-readable output goes through the JSON handler instead.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record message with the marker and color of its level.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	marker, color := levelDecoration(r.Level)

	msg := r.Message
	if marker != "" {
		msg = marker + " " + msg
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns the handler unchanged. PrettyHandler renders messages
// only.
func (h *PrettyHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler unchanged. PrettyHandler renders messages
// only.
func (h *PrettyHandler) WithGroup(_ string) slog.Handler {
	return h
}

func levelDecoration(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// Package logging builds the leveled loggers shared by the avatars commands
// and carries them through context.Context.
package logging

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w at the named level. An empty
// or unknown level falls back to info.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           ParseLevel(level),
	})
}

// ParseLevel maps a configured level name to a log level.
func ParseLevel(value string) log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(value))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Progress logs the elapsed time of one operation when Done is called.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// NewProgress starts timing an operation.
func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done logs msg with the elapsed duration rounded to the millisecond.
func (p *Progress) Done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger carried by ctx, or log.Default.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
		return l
	}
	return log.Default()
}

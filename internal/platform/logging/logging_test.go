package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewHonorsLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{name: "info at info level", level: "info", logFunc: func(l *log.Logger) { l.Info("test") }, wantLog: true},
		{name: "debug at info level", level: "info", logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: false},
		{name: "debug at debug level", level: "debug", logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: true},
		{name: "unknown level is info", level: "chatty", logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Fatalf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel(" warn "); got != log.WarnLevel {
		t.Fatalf("ParseLevel(warn) = %v, want %v", got, log.WarnLevel)
	}
	if got := ParseLevel(""); got != log.InfoLevel {
		t.Fatalf("ParseLevel(empty) = %v, want %v", got, log.InfoLevel)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	NewProgress(New(&buf, "info")).Done("seeded", "avatars", 3)
	out := buf.String()
	if !strings.Contains(out, "seeded") || !strings.Contains(out, "elapsed") {
		t.Fatalf("progress output = %q, want message and elapsed", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")
	if got := FromContext(WithLogger(context.Background(), logger)); got != logger {
		t.Fatal("expected logger from context")
	}
	if got := FromContext(context.Background()); got != log.Default() {
		t.Fatal("expected default logger without context value")
	}
}

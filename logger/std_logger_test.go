package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/ekarlsen/seatlock/testutil"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	prevFlags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(prev)
		log.SetFlags(prevFlags)
	}()
	fn()
	return buf.String()
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, parseLogLevel(tt.input), "input %q", tt.input)
	}
}

func TestStdLogger_LevelFilter(t *testing.T) {
	l := NewStdLogger("warn")

	out := captureOutput(t, func() {
		l.Debugw("too quiet")
		l.Infow("still too quiet")
		l.Warnw("heard")
	})

	testutil.AssertFalse(t, strings.Contains(out, "too quiet"))
	testutil.AssertContains(t, out, "[WARN] heard")
}

func TestStdLogger_KeyValues(t *testing.T) {
	l := NewStdLogger("debug")

	out := captureOutput(t, func() {
		l.Infow("admitted", "resource", "evt-1", "role", "usher")
	})

	testutil.AssertContains(t, out, "[INFO] admitted")
	testutil.AssertContains(t, out, "resource=evt-1")
	testutil.AssertContains(t, out, "role=usher")
}

func TestStdLogger_With(t *testing.T) {
	l := NewStdLogger("debug").With("component", "admission")

	out := captureOutput(t, func() {
		l.Infow("hello")
	})

	testutil.AssertContains(t, out, "component=admission")
}

func TestStdLogger_WithResource(t *testing.T) {
	l := NewStdLogger("debug").WithResource("evt-9")

	out := captureOutput(t, func() {
		l.Errorw("boom")
	})

	testutil.AssertContains(t, out, "[ERROR] boom")
	testutil.AssertContains(t, out, "resource=evt-9")
}

func TestStdLogger_OddKeyValuesIgnored(t *testing.T) {
	l := NewStdLogger("debug")

	out := captureOutput(t, func() {
		l.Infow("msg", "dangling")
	})

	testutil.AssertContains(t, out, "[INFO] msg")
	testutil.AssertFalse(t, strings.Contains(out, "dangling="))
}

func TestNoOpLogger_Overrides(t *testing.T) {
	var got string
	l := &NoOpLogger{InfowFunc: func(msg string, _ ...any) { got = msg }}

	l.Infow("observed")
	l.Debugw("dropped")

	testutil.AssertEqual(t, "observed", got)
	testutil.AssertEqual(t, l, l.With("k", "v"))
	testutil.AssertEqual(t, l, l.WithComponent("x"))
}

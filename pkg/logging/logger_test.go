package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{" debug ", DebugLevel},
		{"info", InfoLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"invalid", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestZapLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: DebugLevel, Writer: &buf})

	logger.Info("serialized graph", Entity("Switch1"), Triples(42), Error(errors.New("boom")))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	entry := lines[0]
	if entry["msg"] != "serialized graph" || entry["level"] != "INFO" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["entity"] != "Switch1" || entry["triples"] != float64(42) {
		t.Errorf("fields missing: %v", entry)
	}
	if entry["error"] != "boom" {
		t.Errorf("error field = %v", entry["error"])
	}
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: WarnLevel, Writer: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	if got := len(decodeLines(t, &buf)); got != 2 {
		t.Errorf("Expected 2 lines, got %d", got)
	}

	logger.SetLevel(DebugLevel)
	if logger.GetLevel() != DebugLevel {
		t.Errorf("GetLevel = %v after SetLevel(Debug)", logger.GetLevel())
	}
	buf.Reset()
	logger.Debug("now shown")
	if got := len(decodeLines(t, &buf)); got != 1 {
		t.Errorf("Expected debug line after SetLevel, got %d", got)
	}
}

func TestZapLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: InfoLevel, Writer: &buf})

	child := logger.With(Component("serializer"), RunID("run-1"))
	child.Info("done", Count(3))

	entry := decodeLines(t, &buf)[0]
	if entry["component"] != "serializer" || entry["run_id"] != "run-1" || entry["count"] != float64(3) {
		t.Errorf("child fields missing: %v", entry)
	}

	// child shares the parent's level
	logger.SetLevel(ErrorLevel)
	buf.Reset()
	child.Info("suppressed")
	if buf.Len() != 0 {
		t.Error("child should follow parent level changes")
	}
}

func TestFromZap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Debug("validate", Violations(1), Source("data.ttl"))
	logger.SetLevel(InfoLevel)
	logger.Debug("dropped")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["violations"] != int64(1) || ctx["source"] != "data.ttl" {
		t.Errorf("unexpected context %v", ctx)
	}
}

func TestTimedOperation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	timer := StartTimer(logger, "serialize", Kind("Router"))
	time.Sleep(time.Millisecond)
	if d := timer.End(Triples(5)); d <= 0 {
		t.Errorf("End returned non-positive duration %v", d)
	}

	StartTimer(logger, "validate").EndError(errors.New("bad shapes"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["latency"]; !ok {
		t.Error("timer entry missing latency")
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Errorf("EndError logged at %v", entries[1].Level)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("nothing")
	if logger.With(Count(1)) == nil {
		t.Error("With should return a logger")
	}
}

func TestDefaultLogger(t *testing.T) {
	prev := DefaultLogger()
	defer SetDefaultLogger(prev)

	nop := NewNopLogger()
	SetDefaultLogger(nop)
	if DefaultLogger() != nop {
		t.Error("SetDefaultLogger did not replace the default")
	}
}

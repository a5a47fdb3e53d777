package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet hides debug", verbose: false, wantDebug: false},
		{name: "verbose shows debug", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)
			logger.Debug("dataset loaded", "rows", 3)
			logger.Warn("failed to load city", "city", "washington")

			output := buf.String()
			if got := strings.Contains(output, "dataset loaded"); got != tt.wantDebug {
				t.Errorf("debug visible = %v, want %v: %q", got, tt.wantDebug, output)
			}
			if !strings.Contains(output, "city=washington") {
				t.Errorf("expected warn record, got %q", output)
			}
		})
	}
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONLogger(&buf, true).Debug("step completed", "step", "time_stats")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if record["msg"] != "step completed" || record["step"] != "time_stats" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	logger.Error("ignored")
	if logger.Enabled(t.Context(), 12) {
		t.Error("expected discard logger to be disabled")
	}
}

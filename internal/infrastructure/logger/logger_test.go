package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		log := New(Config{Level: tt.input, Format: "json"})
		if got := log.GetLevel(); got != tt.want {
			t.Fatalf("New(level=%q).GetLevel() = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLoggerOutput(t *testing.T) {
	output := captureStdout(t, func() {
		log := New(Config{Level: "info", Format: "json"})
		log.Info().Msg("hello")
	})

	if !strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Fatalf("expected json output to start with '{', got %q", output)
	}
	if !strings.Contains(output, `"service":"nexo-api"`) {
		t.Fatalf("expected service field on every line, got %q", output)
	}
	if !strings.Contains(output, `"message":"hello"`) {
		t.Fatalf("expected message field, got %q", output)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}

	return buf.String()
}

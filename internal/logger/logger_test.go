package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eduvision.log")
	l, err := New("debug", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("plan generated", "subject", "生物", "api_key", "AIza-secret")
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "plan generated") {
		t.Errorf("log missing message: %s", out)
	}
	if strings.Contains(out, "AIza-secret") {
		t.Errorf("api key leaked into log: %s", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Errorf("expected redaction marker: %s", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eduvision.log")
	l, err := New("warn", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	l.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn line missing")
	}
}

func TestEmptyPathIsNop(t *testing.T) {
	l, err := New("info", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Error("discarded", "k", "v")
}

func TestSanitizeKVsKeepsTokenCounts(t *testing.T) {
	got := sanitizeKVs([]any{"input_tokens", 12, "auth_token", "xyz"})
	if got[1] != 12 {
		t.Errorf("input_tokens redacted: %v", got)
	}
	if got[3] != "[REDACTED]" {
		t.Errorf("auth_token not redacted: %v", got)
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	got := sanitizeKVs([]any{"token", "abc", "dangling"})
	if len(got) != 3 || got[1] != "[REDACTED]" || got[2] != "dangling" {
		t.Fatalf("unexpected result: %v", got)
	}
}

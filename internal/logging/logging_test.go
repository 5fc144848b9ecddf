package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "tmm.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONWithRunID(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(true)
	Trace("session.kill", map[string]interface{}{"target": "work"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Run     string                 `json:"run"`
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry.Event != "session.kill" {
		t.Fatalf("expected event session.kill, got %q", entry.Event)
	}
	if entry.Run != RunID() || entry.Run == "" {
		t.Fatalf("expected run id %q, got %q", RunID(), entry.Run)
	}
	if entry.Payload["target"] != "work" {
		t.Fatalf("expected payload target work, got %v", entry.Payload["target"])
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(false)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, got err=%v", err)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := withLogFile(t)
	Error(errors.New("kill-session work failed"))
	Error(nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "kill-session work failed") {
		t.Fatalf("expected error in log, got %q", string(data))
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected a single line, got %q", string(data))
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ppiankov/dossier/internal/model"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(model.LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("dossier saved", zap.String("path", "company_dossier.json"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line at info level, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Expected JSON output: %v", err)
	}
	if entry["msg"] != "dossier saved" || entry["path"] != "company_dossier.json" {
		t.Errorf("Unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Error("Expected ts key")
	}
}

func TestNew_ConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(model.LoggingConfig{Level: "debug", Format: "console"}, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	logger.Debug("field merged")

	if !strings.Contains(buf.String(), "field merged") || strings.HasPrefix(buf.String(), "{") {
		t.Errorf("Expected console line, got %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(model.LoggingConfig{Level: "loud"}, nil); err == nil {
		t.Error("Expected error for invalid level")
	}
}

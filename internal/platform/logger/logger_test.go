package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("text") != FormatText || ParseFormat("console") != FormatText {
		t.Fatalf("expected text format")
	}
	if ParseFormat("") != FormatJSON || ParseFormat("json") != FormatJSON {
		t.Fatalf("expected json format by default")
	}
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "capivaras-api", Output: &buf})

	log.With(map[string]any{"component": "store"}).Info("saved", map[string]any{
		"collection": "capivaras",
		"items":      3,
		"":           "dropped",
	})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "info" || entry["message"] != "saved" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["app"] != "capivaras-api" || entry["component"] != "store" || entry["collection"] != "capivaras" {
		t.Fatalf("missing fields: %v", entry)
	}
	if entry["items"] != float64(3) {
		t.Fatalf("expected items=3, got %v", entry["items"])
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key must be dropped: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp: %v", entry)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Output: &buf})

	log.Debug("debug message", nil)
	log.Info("info message", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %s", buf.String())
	}

	log.Error("error message", nil)
	if !strings.Contains(buf.String(), "error message") {
		t.Fatalf("expected error line, got %s", buf.String())
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatText, Output: &buf})

	log.Info("listening", map[string]any{"addr": ":7000"})

	out := buf.String()
	if !strings.Contains(out, "listening") || !strings.Contains(out, "addr=:7000") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestLogger_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capivaras.log")
	var stderr bytes.Buffer

	log := New(Options{Level: Info, Output: &stderr, File: FileOptions{Filename: path, MaxSize: 1}})
	log.Info("to file", nil)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), "to file") {
		t.Fatalf("expected line in file, got %q", raw)
	}
	if stderr.Len() != 0 {
		t.Fatalf("non-debug file logging must not mirror to output, got %q", stderr.String())
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.With(map[string]any{"a": 1}).Error("ignored", nil)
}

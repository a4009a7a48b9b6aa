package obslog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestFormatterHandler_TextFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(newFormatterHandler(&buf, &TextFormatter{}, slog.LevelInfo))
	l.Module("issuer").Info("issued credential", "q", 3)

	out := buf.String()
	if !strings.Contains(out, "INFO ") {
		t.Errorf("missing level in output: %s", out)
	}
	if !strings.Contains(out, "issued credential") {
		t.Errorf("missing message in output: %s", out)
	}
	if !strings.Contains(out, "module=issuer") {
		t.Errorf("missing module field in output: %s", out)
	}
	if !strings.Contains(out, "q=3") {
		t.Errorf("missing q field in output: %s", out)
	}
}

func TestFormatterHandler_JSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(newFormatterHandler(&buf, &JSONFormatter{}, slog.LevelDebug))
	l.With("authority", 2).Warn("partial share missing")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
	if entry["msg"] != "partial share missing" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if v, ok := entry["authority"].(float64); !ok || v != 2 {
		t.Errorf("authority = %v, want 2", entry["authority"])
	}
}

func TestFormatterHandler_ColorFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(newFormatterHandler(&buf, &ColorFormatter{}, slog.LevelInfo))
	l.Error("verification failed")

	out := buf.String()
	if !strings.Contains(out, ansiReset) {
		t.Errorf("expected ANSI reset in colored output: %s", out)
	}
	if !strings.Contains(out, "verification failed") {
		t.Errorf("missing message: %s", out)
	}
}

func TestFormatterHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(newFormatterHandler(&buf, &TextFormatter{}, slog.LevelWarn))
	l.Info("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below configured level, got: %s", buf.String())
	}
	l.Warn("should appear")
	if buf.Len() == 0 {
		t.Fatal("expected output at configured level")
	}
}

func TestFormatterHandler_GroupQualifiesKeys(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(newFormatterHandler(&buf, &JSONFormatter{}, slog.LevelInfo).WithGroup("share"))
	l.Info("issued", "index", 1)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if _, ok := entry["share.index"]; !ok {
		t.Errorf("expected group-qualified key 'share.index', got: %v", entry)
	}
}

func TestNewWithFormat(t *testing.T) {
	// NewWithFormat must produce a usable Logger for every formatter kind
	// cmd/coconut-demo's --log-format flag can select.
	for _, formatter := range []LogFormatter{&TextFormatter{}, &JSONFormatter{}, &ColorFormatter{}} {
		l := NewWithFormat(slog.LevelInfo, formatter)
		if l == nil {
			t.Fatalf("NewWithFormat(%T) returned nil", formatter)
		}
	}
}

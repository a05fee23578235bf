package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestInitAndLoggingToFile(t *testing.T) {
	console := captureStdout(t)
	logPath := filepath.Join(t.TempDir(), "nested", "llmboard.log")

	if err := Init(logPath, Options{}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	LogEvent("hello %s", "world")
	Debugf("hidden %d", 1)
	L().Info("structured", zap.String("chart", "overall"))
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"msg":"hello world"`) {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, `"chart":"overall"`) {
		t.Fatalf("expected structured field, got: %s", content)
	}
	if strings.Contains(content, "hidden") {
		t.Fatalf("debug output written at info level: %s", content)
	}
	if !strings.Contains(console.String(), "hello world") {
		t.Fatalf("expected console output, got: %s", console.String())
	}
}

func TestInitDebugLevel(t *testing.T) {
	console := captureStdout(t)
	if err := Init("", Options{Debug: true}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	Debugf("visible %d", 2)
	if !strings.Contains(console.String(), "visible 2") {
		t.Fatalf("expected debug output, got: %s", console.String())
	}
}

func TestInitQuiet(t *testing.T) {
	console := captureStdout(t)
	if err := Init("", Options{Quiet: true}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	LogEvent("discard")
	if console.Len() != 0 {
		t.Fatalf("expected log output discarded, got: %s", console.String())
	}
}

func TestLoggingAfterCloseIsNoop(t *testing.T) {
	console := captureStdout(t)
	if err := Init("", Options{}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	LogEvent("after close")
	if strings.Contains(console.String(), "after close") {
		t.Fatalf("logged after Close: %s", console.String())
	}
	if L() == nil {
		t.Fatal("L must never return nil")
	}
}

package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetDebug(false)

	GetLogger("test").Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug message was written: %q", buf.String())
	}
}

func TestDebugEnabled(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetDebug(true)
	defer SetDebug(false)

	GetLogger("test").Debugf("visible %d", 1)
	if !strings.Contains(buf.String(), "test: ") || !strings.Contains(buf.String(), "debug: visible 1") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestGetLoggerCached(t *testing.T) {
	if GetLogger("a") != GetLogger("a") {
		t.Fatal("loggers are not cached")
	}
	if GetLogger("a") == GetLogger("b") {
		t.Fatal("different subsystems share a logger")
	}
}

func TestEnsureDirExists(t *testing.T) {
	dir := t.TempDir() + "/a/b"
	if err := EnsureDirExists(dir, false); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDirExists(dir, false); err != nil {
		t.Fatal(err)
	}
}

func TestDebugLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetDebug(false)

	logger := GetLogger("test").Debug()
	logger.Logf("hidden %d", 1)
	logger.Log("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message was written: %q", buf.String())
	}

	SetDebug(true)
	defer SetDebug(false)
	logger.Logf("visible %d", 2)
	logger.Log("visible ", 3)
	out := buf.String()
	if !strings.Contains(out, "debug: visible 2") || !strings.Contains(out, "debug: visible 3") {
		t.Fatalf("unexpected output: %q", out)
	}
}

package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNoopBeforeInit(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	// must not panic
	Info("ignored", String("k", "v"))
	Sync()
}

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "overlay.log")

	if err := Init(Config{Level: DebugLevel, OutputPath: path, MaxSize: 1}); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		mu.Lock()
		globalLogger = nil
		mu.Unlock()
	})

	Debug("hello", Int("line", 3), Bool("active", true))
	Sync()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("expected one log line")
	}

	var entry map[string]any
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}
	if entry["msg"] != "hello" || entry["level"] != "debug" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["line"] != float64(3) {
		t.Errorf("expected line field 3, got %v", entry["line"])
	}
}

func TestLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.log")

	if err := Init(Config{Level: WarnLevel, OutputPath: path}); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		mu.Lock()
		globalLogger = nil
		mu.Unlock()
	})

	Info("dropped")
	Warn("kept")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	var lines int
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines++
	}
	if lines != 1 {
		t.Errorf("expected only the warn entry, got %d lines:\n%s", lines, data)
	}
}

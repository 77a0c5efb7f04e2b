package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewChordIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewChordID()
		if !IsChordID(id) {
			t.Fatalf("Generated id %q does not parse", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
	if IsChordID("not-an-id") {
		t.Error("Expected garbage id to be rejected")
	}
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "chords.sqlite3")
	if err := EnsureParentDir(path); err != nil {
		t.Fatalf("EnsureParentDir failed: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("Expected directory %s to exist", filepath.Dir(path))
	}
	if err := EnsureParentDir("chords.sqlite3"); err != nil {
		t.Errorf("Expected no error for bare filename, got %v", err)
	}
}

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.txt")
	if err := os.WriteFile(path, []byte("Capo 2\nG D Em C\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	text, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile failed: %v", err)
	}
	if text != "Capo 2\nG D Em C\n" {
		t.Errorf("Unexpected contents: %q", text)
	}
	if _, err := ReadTextFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

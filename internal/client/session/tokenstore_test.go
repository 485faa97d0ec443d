package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_LoadMissingFile(t *testing.T) {
	store := &FileTokenStore{Path: filepath.Join(t.TempDir(), "session.json")}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestFileTokenStore_SaveAndLoad(t *testing.T) {
	store := &FileTokenStore{Path: filepath.Join(t.TempDir(), "session.json")}

	if err := store.Save("abc123"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if token != "abc123" {
		t.Errorf("expected token %q, got %q", "abc123", token)
	}
}

func TestFileTokenStore_SaveOverwrites(t *testing.T) {
	store := &FileTokenStore{Path: filepath.Join(t.TempDir(), "session.json")}

	if err := store.Save("first"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save("second"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	token, _ := store.Load()
	if token != "second" {
		t.Errorf("expected token %q, got %q", "second", token)
	}
}

func TestFileTokenStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := &FileTokenStore{Path: path}

	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected token file removed, stat err = %v", err)
	}

	// Clearing again must not fail.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on missing file failed: %v", err)
	}
}

func TestFileTokenStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := &FileTokenStore{Path: path}

	if _, err := store.Load(); err == nil {
		t.Error("expected error for corrupt token file")
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created along with missing parents
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestPlayerNameAbsent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	name, err := store.PlayerName()
	if err != nil {
		t.Fatalf("PlayerName() failed: %v", err)
	}
	if name != "" {
		t.Errorf("Expected empty name for fresh store, got %q", name)
	}
}

func TestPlayerNameSetAndOverwrite(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SetPlayerName("Ada"); err != nil {
		t.Fatalf("SetPlayerName() failed: %v", err)
	}
	name, err := store.PlayerName()
	if err != nil {
		t.Fatalf("PlayerName() failed: %v", err)
	}
	if name != "Ada" {
		t.Errorf("Expected %q, got %q", "Ada", name)
	}

	if err := store.SetPlayerName(""); err != nil {
		t.Fatalf("SetPlayerName(\"\") failed: %v", err)
	}
	name, err = store.PlayerName()
	if err != nil {
		t.Fatalf("PlayerName() failed: %v", err)
	}
	if name != "" {
		t.Errorf("Expected cleared name, got %q", name)
	}
}

func TestPreferencesPersistAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetPlayerName("Grace"); err != nil {
		t.Fatalf("SetPlayerName() failed: %v", err)
	}
	if err := store.Set("other", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	name, err := store.PlayerName()
	if err != nil {
		t.Fatalf("PlayerName() failed: %v", err)
	}
	if name != "Grace" {
		t.Errorf("Expected %q after reopen, got %q", "Grace", name)
	}

	other, err := store.Get("other")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if other != "value" {
		t.Errorf("Expected %q, got %q", "value", other)
	}
}

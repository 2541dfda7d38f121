package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	if Authenticated(store) {
		t.Fatal("fresh store must not be authenticated")
	}

	if err := store.Set("abc123", RoleAdmin); err != nil {
		t.Fatalf("set: %v", err)
	}
	if store.Token() != "abc123" {
		t.Fatalf("token = %q", store.Token())
	}
	if store.Role() != RoleAdmin {
		t.Fatalf("role = %q", store.Role())
	}

	// A second store on the same path sees the same session, the way a
	// reloaded app picks up localStorage.
	reopened := NewFileStore(path)
	if reopened.Token() != "abc123" || reopened.Role() != RoleAdmin {
		t.Fatalf("reopened store lost session: %q %q", reopened.Token(), reopened.Role())
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	if err := store.Set("tok", RoleEmployee); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.Token() != "" || store.Role() != "" {
		t.Fatal("token and role must be cleared together")
	}
	// Clearing an already-cleared session must not fail.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStoreRejectsEmptyToken(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Set("", RoleAdmin); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewFileStore(path)
	if store.Token() != "" {
		t.Fatal("corrupt file must read as unauthenticated")
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	if err := store.Set("t", RoleEmployee); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !Authenticated(store) {
		t.Fatal("expected authenticated")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if Authenticated(store) {
		t.Fatal("expected unauthenticated after clear")
	}
}

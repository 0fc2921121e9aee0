package gateway

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCredentialStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fintrack", "accessToken")

	s := NewCredentialStore(path)
	if s.Token() != "" {
		t.Fatalf("expected empty token, got %q", s.Token())
	}

	s.Set("tok-1")
	if s.Token() != "tok-1" {
		t.Fatalf("expected tok-1, got %q", s.Token())
	}

	// A fresh store reads the persisted credential back.
	restored := NewCredentialStore(path)
	if restored.Token() != "tok-1" {
		t.Fatalf("expected persisted tok-1, got %q", restored.Token())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("token file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}
}

func TestCredentialStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accessToken")

	s := NewCredentialStore(path)
	s.Set("tok-1")
	s.Clear()

	if s.Token() != "" {
		t.Fatalf("expected cleared token, got %q", s.Token())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("token file should be removed, stat err = %v", err)
	}
}

func TestCredentialStore_MemoryOnly(t *testing.T) {
	s := NewCredentialStore("")
	s.Set("tok-1")
	if s.Token() != "tok-1" {
		t.Fatalf("expected tok-1, got %q", s.Token())
	}
	s.Clear()
	if s.Token() != "" {
		t.Fatalf("expected cleared token, got %q", s.Token())
	}
}

package gateway

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenFileName is the single well-known key the access token lives
// under, mirroring the original client's storage slot.
const tokenFileName = "accessToken"

// DefaultTokenPath returns the conventional credential location in the
// user's home directory.
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fintrack", tokenFileName)
}

// CredentialStore holds the current access credential and optionally
// persists it to disk so a restarted process can restore its session.
// A store with an empty path is memory-only.
type CredentialStore struct {
	mu    sync.RWMutex
	token string
	path  string
}

// NewCredentialStore creates a credential store backed by the given file
// path, loading any previously persisted token.
func NewCredentialStore(path string) *CredentialStore {
	s := &CredentialStore{path: path}
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			s.token = strings.TrimSpace(string(data))
		}
	}
	return s
}

// Token returns the current access credential, or "" when absent.
func (s *CredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set stores a new access credential and persists it.
func (s *CredentialStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if s.path == "" {
		return
	}
	// Persistence failures degrade to a memory-only session.
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear drops the credential from memory and disk.
func (s *CredentialStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

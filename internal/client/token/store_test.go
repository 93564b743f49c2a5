package token

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGet_NoFile(t *testing.T) {
	s := NewStore(t.TempDir())
	if tok, ok := s.Get(); ok || tok != "" {
		t.Errorf("expected absent credential, got %q", tok)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Set("abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	tok, ok := s.Get()
	if !ok || tok != "abc123" {
		t.Errorf("expected abc123, got %q (present=%v)", tok, ok)
	}
}

func TestSet_Overwrites(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Set("first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("second"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if tok, _ := s.Get(); tok != "second" {
		t.Errorf("expected second, got %q", tok)
	}
}

func TestSet_RejectsEmpty(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Set(""); err != ErrEmptyToken {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
}

func TestClear_Idempotent(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on empty store failed: %v", err)
	}
	if err := s.Set("tok"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
	if _, ok := s.Get(); ok {
		t.Error("expected credential gone after Clear")
	}
}

func TestStore_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	if err := NewStore(dir).Set("persisted"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh Store over the same directory models a process restart.
	tok, ok := NewStore(dir).Get()
	if !ok || tok != "persisted" {
		t.Errorf("expected persisted credential, got %q (present=%v)", tok, ok)
	}
}

func TestGet_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, credentialsFile), []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if tok, ok := NewStore(dir).Get(); ok {
		t.Errorf("corrupt file should read as absent, got %q", tok)
	}
}

func TestSet_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	dir := t.TempDir()
	s := NewStore(dir)
	if err := s.Set("secret"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, credentialsFile))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}

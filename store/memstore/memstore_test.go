package memstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/zseri/nix/store"
	"github.com/zseri/nix/store/memstore/storetest"
)

func TestConformance(t *testing.T) {
	storetest.RunConformance(t, func(t *testing.T) store.Store {
		return New("/nix/store")
	})
}

func TestStoreDirDefault(t *testing.T) {
	s := New("")
	if s.StoreDir() != "/nix/store" {
		t.Fatalf("got %q, want default /nix/store", s.StoreDir())
	}
}

func TestConfigLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	b, err := json.Marshal(Config{StoreDir: "/custom/store"})
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	s := cfg.Open()
	if s.StoreDir() != "/custom/store" {
		t.Fatalf("got %q, want /custom/store", s.StoreDir())
	}
}

func TestConfigLoadFileEmptyPath(t *testing.T) {
	if _, err := LoadFile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

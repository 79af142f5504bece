package memstore

import (
	"encoding/json"
	"errors"
	"os"
)

// Config describes how to construct a Store: currently just its directory
// prefix. JSON-decoded rather than flag-only, the way a caller composing
// several subcommands wants one config file instead of repeating flags.
type Config struct {
	StoreDir string `json:"store_dir,omitempty"`
}

// LoadFile reads and validates a Config from a JSON file at path.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("memstore: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports whether cfg is well-formed. An empty StoreDir is valid —
// Open defaults it.
func (cfg Config) Validate() error {
	return nil
}

// Open constructs a Store per cfg.
func (cfg Config) Open() *Store {
	return New(cfg.StoreDir)
}

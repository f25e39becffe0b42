package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "game.yaml"

// Loader reads the game config from a directory or any fs.FS.
type Loader struct {
	fsys fs.FS
	dir  string
}

// NewLoader creates a loader rooted at dir on disk.
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), dir: dir}
}

// NewFSLoader creates a loader over fsys, e.g. an embed.FS or fstest.MapFS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Dir is the directory on disk, empty for fs.FS loaders.
func (l *Loader) Dir() string { return l.dir }

// Load reads, defaults and validates game.yaml.
func (l *Loader) Load() (*Config, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a defaulted, validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

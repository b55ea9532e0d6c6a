package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const worldsDir = "worlds"

// Loader loads game configuration using the fs.FS interface.
// Tuning lives in game.json, world layouts in worlds/*.yaml.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json on top of the defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return cfg, nil
}

// LoadWorld loads worlds/<name>.yaml
func (l *Loader) LoadWorld(name string) (*WorldConfig, error) {
	p := path.Join(worldsDir, name+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read world %s: %w", name, err)
	}

	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}

// ListWorlds returns the names of all world files, sorted
func (l *Loader) ListWorlds() ([]string, error) {
	matches, err := fs.Glob(l.fsys, path.Join(worldsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

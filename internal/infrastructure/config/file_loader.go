package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// manifestCandidates are the file names probed, in order, when no explicit
// manifest path is given.
var manifestCandidates = []string{"site.yaml", "site.yml", "site.toml", "site.json"}

// FileLoader reads a site manifest from disk, dispatching on the file
// extension for the format.
type FileLoader struct{}

// NewFileLoader creates a manifest file loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads and decodes the manifest at path. The decoded manifest
// contains only the fields present in the file; callers layer it over
// defaults.
func (l *FileLoader) Load(path string) (SiteManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteManifest{}, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m SiteManifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return SiteManifest{}, fmt.Errorf("failed to parse YAML manifest %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return SiteManifest{}, fmt.Errorf("failed to parse TOML manifest %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return SiteManifest{}, fmt.Errorf("failed to parse JSON manifest %s: %w", path, err)
		}
	default:
		return SiteManifest{}, fmt.Errorf("unsupported manifest format %q (want .yaml, .toml, or .json)", ext)
	}

	return m, nil
}

// Discover returns the first manifest candidate that exists in dir, or an
// empty string when none does.
func (l *FileLoader) Discover(dir string) string {
	for _, name := range manifestCandidates {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Package config loads the site manifest the descriptor builder consumes.
// Precedence follows env > file > defaults, with provenance tracked per
// field in a Snapshot.
package config

import (
	"fmt"

	"siteforge.dev/cli/internal/builder"
	"siteforge.dev/cli/internal/core/descriptor"
)

// SiteManifest is the on-disk input to the descriptor builder. Manifests
// may be written in YAML, TOML, or JSON; the tags cover all three.
type SiteManifest struct {
	Site    SiteSection     `json:"site" yaml:"site" toml:"site"`
	Content ContentSection  `json:"content" yaml:"content" toml:"content"`
	Version VersionSection  `json:"version" yaml:"version" toml:"version"`
	Plugins []PluginSection `json:"plugins,omitempty" yaml:"plugins,omitempty" toml:"plugins,omitempty"`
}

// SiteSection holds the site metadata fields.
type SiteSection struct {
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Author      string `json:"author" yaml:"author" toml:"author"`
}

// ContentSection locates the documentation content and the paths excluded
// from the generated site.
type ContentSection struct {
	Root         string   `json:"root" yaml:"root" toml:"root"`
	ExcludePaths []string `json:"exclude_paths" yaml:"exclude_paths" toml:"exclude_paths"`
}

// VersionSection declares how the documentation version is resolved.
// Source selects the resolver: "static" uses Value, "env" reads the Env
// variable, "file" reads the first non-blank line of File.
type VersionSection struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Env    string `json:"env,omitempty" yaml:"env,omitempty" toml:"env,omitempty"`
	File   string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
}

// PluginSection is an extra plugin activation appended after the default
// set. Options may be omitted for a bare activation.
type PluginSection struct {
	Resolve string         `json:"resolve" yaml:"resolve" toml:"resolve"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// Version source selectors.
const (
	VersionSourceStatic = "static"
	VersionSourceEnv    = "env"
	VersionSourceFile   = "file"
)

// DefaultManifest returns the manifest for the flagship documentation site.
// A manifest file and environment overrides layer on top of these values.
func DefaultManifest() SiteManifest {
	return SiteManifest{
		Site: SiteSection{
			Title:       "Dagster",
			Description: "Documentation for the Dagster data orchestrator",
			Author:      "@dagsterio",
		},
		Content: ContentSection{
			Root:         ".",
			ExcludePaths: []string{"/dagster/**"},
		},
		Version: VersionSection{
			Source: VersionSourceStatic,
			Value:  "latest",
		},
	}
}

// BuilderSite maps the manifest onto the builder's input parameters.
func (m SiteManifest) BuilderSite() (builder.Site, error) {
	meta, err := descriptor.NewSiteMetadata(m.Site.Title, m.Site.Description, m.Site.Author)
	if err != nil {
		return builder.Site{}, fmt.Errorf("invalid site metadata: %w", err)
	}

	extras := make([]descriptor.PluginEntry, 0, len(m.Plugins))
	for _, p := range m.Plugins {
		if p.Options == nil {
			extras = append(extras, descriptor.NewPlugin(p.Resolve))
			continue
		}
		extras = append(extras, descriptor.NewPluginWithOptions(p.Resolve, descriptor.Options(p.Options)))
	}

	return builder.Site{
		Metadata:      meta,
		ContentRoot:   m.Content.Root,
		ExcludedPaths: m.Content.ExcludePaths,
		ExtraPlugins:  extras,
	}, nil
}

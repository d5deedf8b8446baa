package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// TestFileLoader_Load_SupportsAllFormats tests format dispatch by extension.
func TestFileLoader_Load_SupportsAllFormats(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		contents string
	}{
		{
			name:     "YAML",
			fileName: "site.yaml",
			contents: `
site:
  title: Custom Docs
  author: "@custom"
content:
  root: /srv/docs
version:
  source: static
  value: 2.0.0
plugins:
  - resolve: gatsby-plugin-offline
`,
		},
		{
			name:     "TOML",
			fileName: "site.toml",
			contents: `
[site]
title = "Custom Docs"
author = "@custom"

[content]
root = "/srv/docs"

[version]
source = "static"
value = "2.0.0"

[[plugins]]
resolve = "gatsby-plugin-offline"
`,
		},
		{
			name:     "JSON",
			fileName: "site.json",
			contents: `{
  "site": {"title": "Custom Docs", "author": "@custom"},
  "content": {"root": "/srv/docs"},
  "version": {"source": "static", "value": "2.0.0"},
  "plugins": [{"resolve": "gatsby-plugin-offline"}]
}`,
		},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.fileName, tt.contents)

			m, err := loader.Load(path)
			require.NoError(t, err)

			assert.Equal(t, "Custom Docs", m.Site.Title)
			assert.Equal(t, "@custom", m.Site.Author)
			assert.Equal(t, "/srv/docs", m.Content.Root)
			assert.Equal(t, "2.0.0", m.Version.Value)
			require.Len(t, m.Plugins, 1)
			assert.Equal(t, "gatsby-plugin-offline", m.Plugins[0].Resolve)
		})
	}
}

// TestFileLoader_Load_RejectsUnknownExtension tests the format guard.
func TestFileLoader_Load_RejectsUnknownExtension(t *testing.T) {
	path := writeManifest(t, "site.ini", "[site]")

	_, err := NewFileLoader().Load(path)
	assert.Error(t, err)
}

// TestFileLoader_Discover_ProbesCandidatesInOrder tests manifest discovery.
func TestFileLoader_Discover_ProbesCandidatesInOrder(t *testing.T) {
	dir := t.TempDir()
	loader := NewFileLoader()

	assert.Empty(t, loader.Discover(dir), "Empty directory yields no manifest")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.toml"), []byte(""), 0644))
	assert.Equal(t, filepath.Join(dir, "site.toml"), loader.Discover(dir))

	// yaml outranks toml when both exist
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(""), 0644))
	assert.Equal(t, filepath.Join(dir, "site.yaml"), loader.Discover(dir))
}

// TestUnifiedLoader_Defaults_ApplyWithoutManifest tests that a missing
// manifest is not an error.
func TestUnifiedLoader_Defaults_ApplyWithoutManifest(t *testing.T) {
	loader := NewUnifiedLoader()

	m, snap, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err, "An explicit path that does not exist should fail")

	// No explicit path: discovery in cwd may or may not find a manifest, so
	// exercise defaults through the empty temp dir instead.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	m, snap, err = loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, "Dagster", m.Site.Title)
	assert.Equal(t, []string{"/dagster/**"}, m.Content.ExcludePaths)
	assert.Equal(t, VersionSourceStatic, m.Version.Source)
	assert.Equal(t, "default", snap["site.title"].Source)
}

// TestUnifiedLoader_Precedence_EnvBeatsFileBeatsDefaults tests the layer
// ordering and provenance.
func TestUnifiedLoader_Precedence_EnvBeatsFileBeatsDefaults(t *testing.T) {
	path := writeManifest(t, "site.yaml", `
site:
  title: From File
  description: file description
`)
	t.Setenv(EnvTitle, "From Env")

	m, snap, err := NewUnifiedLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "From Env", m.Site.Title, "Env overrides the file")
	assert.Equal(t, "env", snap["site.title"].Source)

	assert.Equal(t, "file description", m.Site.Description, "File overrides defaults")
	assert.Equal(t, "file", snap["site.description"].Source)

	assert.Equal(t, "@dagsterio", m.Site.Author, "Defaults fill the rest")
	assert.Equal(t, "default", snap["site.author"].Source)
}

// TestUnifiedLoader_EnvVersionOverride_ForcesStaticResolution tests that a
// version override wins over manifest-declared file resolution.
func TestUnifiedLoader_EnvVersionOverride_ForcesStaticResolution(t *testing.T) {
	path := writeManifest(t, "site.yaml", `
version:
  source: file
  file: /nonexistent/version.txt
`)
	t.Setenv(EnvVersion, "3.1.4")

	m, _, err := NewUnifiedLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, VersionSourceStatic, m.Version.Source)
	assert.Equal(t, "3.1.4", m.Version.Value)
}

// TestResolverFor_SelectsResolverBySource tests the resolver mapping.
func TestResolverFor_SelectsResolverBySource(t *testing.T) {
	t.Run("Static", func(t *testing.T) {
		r, err := ResolverFor(VersionSection{Source: VersionSourceStatic, Value: "1.2.3"})
		require.NoError(t, err)

		v, err := r.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", v)
	})

	t.Run("EmptySourceDefaultsToStatic", func(t *testing.T) {
		r, err := ResolverFor(VersionSection{Value: "1.2.3"})
		require.NoError(t, err)

		v, err := r.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", v)
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv("DOCS_VERSION", "0.5.0")

		r, err := ResolverFor(VersionSection{Source: VersionSourceEnv, Env: "DOCS_VERSION"})
		require.NoError(t, err)

		v, err := r.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "0.5.0", v)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "version.txt")
		require.NoError(t, os.WriteFile(path, []byte("0.6.0\n"), 0644))

		r, err := ResolverFor(VersionSection{Source: VersionSourceFile, File: path})
		require.NoError(t, err)

		v, err := r.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "0.6.0", v)
	})

	t.Run("MisconfiguredSection_ShouldFail", func(t *testing.T) {
		_, err := ResolverFor(VersionSection{Source: "registry"})
		assert.Error(t, err)

		_, err = ResolverFor(VersionSection{Source: VersionSourceEnv})
		assert.Error(t, err)

		_, err = ResolverFor(VersionSection{Source: VersionSourceFile})
		assert.Error(t, err)
	})
}

// TestBuilderSite_MapsManifestOntoBuilderInput tests the manifest mapping.
func TestBuilderSite_MapsManifestOntoBuilderInput(t *testing.T) {
	m := DefaultManifest()
	m.Plugins = []PluginSection{
		{Resolve: "gatsby-plugin-offline"},
		{Resolve: "third-party-plugin", Options: map[string]any{"key": "value"}},
	}

	site, err := m.BuilderSite()
	require.NoError(t, err)

	assert.Equal(t, "Dagster", site.Metadata.Title)
	assert.Equal(t, ".", site.ContentRoot)
	require.Len(t, site.ExtraPlugins, 2)
	assert.True(t, site.ExtraPlugins[0].IsBare())
	assert.False(t, site.ExtraPlugins[1].IsBare())
	assert.Equal(t, "value", site.ExtraPlugins[1].Options()["key"])
}

// TestBuilderSite_EmptyTitle_ShouldFail tests metadata validation at the
// mapping boundary.
func TestBuilderSite_EmptyTitle_ShouldFail(t *testing.T) {
	m := DefaultManifest()
	m.Site.Title = ""

	_, err := m.BuilderSite()
	assert.Error(t, err)
}

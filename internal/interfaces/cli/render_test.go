package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := NewApp()
	cmd := NewRootCommand(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// TestRenderCommand_EmitsDescriptorJSON tests the end-to-end render path:
// manifest in, descriptor JSON out.
func TestRenderCommand_EmitsDescriptorJSON(t *testing.T) {
	path := writeTestManifest(t, `
site:
  title: Test Docs
content:
  root: /srv/docs
version:
  source: static
  value: 1.2.3
`)

	out, err := runCommand(t, "render", "--config", path)
	require.NoError(t, err)

	var rendered struct {
		SiteMetadata struct {
			Title string `json:"title"`
		} `json:"siteMetadata"`
		Plugins []json.RawMessage `json:"plugins"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rendered))

	assert.Equal(t, "Test Docs", rendered.SiteMetadata.Title)
	require.Len(t, rendered.Plugins, 9)

	// Bare entries render as plain strings.
	assert.Equal(t, `"gatsby-plugin-react-helmet"`, string(rendered.Plugins[0]))

	// The docs source carries the versioned content path.
	var docsSource struct {
		Resolve string         `json:"resolve"`
		Options map[string]any `json:"options"`
	}
	require.NoError(t, json.Unmarshal(rendered.Plugins[5], &docsSource))
	assert.Equal(t, "gatsby-source-filesystem", docsSource.Resolve)
	assert.Equal(t, filepath.Join("/srv/docs", "versions", "1.2.3"), docsSource.Options["path"])

	// The exclusion patterns arrive unaltered.
	var exclude struct {
		Resolve string         `json:"resolve"`
		Options map[string]any `json:"options"`
	}
	require.NoError(t, json.Unmarshal(rendered.Plugins[8], &exclude))
	assert.Equal(t, "gatsby-plugin-exclude", exclude.Resolve)
	assert.Equal(t, []any{"/dagster/**"}, exclude.Options["paths"])
}

// TestRenderCommand_VersionIDFlag_OverridesManifest tests the flag layer.
func TestRenderCommand_VersionIDFlag_OverridesManifest(t *testing.T) {
	path := writeTestManifest(t, `
version:
  source: static
  value: 1.0.0
`)

	out, err := runCommand(t, "render", "--config", path, "--version-id", "9.9.9", "--content-root", "/srv/docs")
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join("/srv/docs", "versions", "9.9.9"))
	assert.NotContains(t, out, "1.0.0")
}

// TestRenderCommand_YAMLFormat tests the alternate output format.
func TestRenderCommand_YAMLFormat(t *testing.T) {
	path := writeTestManifest(t, `
version:
  value: 1.2.3
`)

	out, err := runCommand(t, "render", "--config", path, "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "siteMetadata:")
	assert.Contains(t, out, "- gatsby-plugin-react-helmet")
}

// TestRenderCommand_RejectsUnknownFormat tests the format guard.
func TestRenderCommand_RejectsUnknownFormat(t *testing.T) {
	path := writeTestManifest(t, "")

	_, err := runCommand(t, "render", "--config", path, "--format", "toml")
	assert.Error(t, err)
}

// TestValidateCommand_FlagsUnknownPlugin tests the catalog lint surface.
func TestValidateCommand_FlagsUnknownPlugin(t *testing.T) {
	path := writeTestManifest(t, `
plugins:
  - resolve: gatsby-plugin-unheard-of
`)

	out, err := runCommand(t, "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, out, "gatsby-plugin-unheard-of")
}

// TestValidateCommand_CleanManifestPasses tests the happy path.
func TestValidateCommand_CleanManifestPasses(t *testing.T) {
	path := writeTestManifest(t, `
site:
  title: Test Docs
version:
  value: 1.2.3
`)

	out, err := runCommand(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid.")
}

// TestInitCommand_WritesScaffoldOnce tests init's overwrite guard.
func TestInitCommand_WritesScaffoldOnce(t *testing.T) {
	target := filepath.Join(t.TempDir(), "site.yaml")

	_, err := runCommand(t, "init", "--path", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Dagster")

	_, err = runCommand(t, "init", "--path", target)
	assert.Error(t, err, "A second init without --force should refuse to overwrite")

	_, err = runCommand(t, "init", "--path", target, "--force")
	assert.NoError(t, err)
}

// TestPluginsCommand_ListsActivationsInOrder tests the plugins table.
func TestPluginsCommand_ListsActivationsInOrder(t *testing.T) {
	path := writeTestManifest(t, `
version:
  value: 1.2.3
plugins:
  - resolve: gatsby-plugin-offline
`)

	out, err := runCommand(t, "plugins", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "gatsby-plugin-react-helmet")
	assert.Contains(t, out, "gatsby-plugin-offline")

	// The extra plugin comes after the default set.
	assert.Less(t,
		bytes.Index([]byte(out), []byte("gatsby-plugin-exclude")),
		bytes.Index([]byte(out), []byte("gatsby-plugin-offline")))
}

// Package registry carries the catalog of plugins known to the build
// framework's loader. The descriptor never enforces resolvability; the
// catalog exists so the validate command can report an unresolvable plugin
// before the external framework fails the build with it.
package registry

import (
	"fmt"
	"sort"

	"siteforge.dev/cli/internal/core/descriptor"
)

// PluginInfo describes one plugin the loader can resolve.
type PluginInfo struct {
	Name        string
	Description string

	// RequiredOptions are the option keys the plugin rejects the
	// activation without. Empty for plugins that activate bare.
	RequiredOptions []string
}

// Catalog is the set of known plugins, keyed by resolve identifier.
type Catalog struct {
	plugins map[string]PluginInfo
}

// DefaultCatalog returns the catalog for the fixed plugin set the builder
// activates.
func DefaultCatalog() *Catalog {
	infos := []PluginInfo{
		{Name: "gatsby-plugin-react-helmet", Description: "document head management"},
		{Name: "gatsby-plugin-sharp", Description: "image processing pipeline"},
		{Name: "gatsby-transformer-sharp", Description: "image node transformer"},
		{Name: "gatsby-transformer-json", Description: "JSON content transformer"},
		{Name: "gatsby-source-filesystem", Description: "filesystem content source", RequiredOptions: []string{"name", "path"}},
		{Name: "gatsby-plugin-typography", Description: "typography.js integration", RequiredOptions: []string{"pathToConfigModule"}},
		{Name: "gatsby-plugin-manifest", Description: "web app manifest generation", RequiredOptions: []string{"name", "short_name", "start_url", "icon"}},
		{Name: "gatsby-plugin-exclude", Description: "page path exclusion", RequiredOptions: []string{"paths"}},
		{Name: "gatsby-plugin-offline", Description: "service worker / offline support"},
	}

	c := &Catalog{plugins: make(map[string]PluginInfo, len(infos))}
	for _, info := range infos {
		c.plugins[info.Name] = info
	}
	return c
}

// Lookup returns the catalog entry for a resolve identifier.
func (c *Catalog) Lookup(name string) (PluginInfo, bool) {
	info, ok := c.plugins[name]
	return info, ok
}

// Known reports whether the loader can resolve the identifier.
func (c *Catalog) Known(name string) bool {
	_, ok := c.plugins[name]
	return ok
}

// Names returns the known resolve identifiers, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.plugins))
	for name := range c.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Finding is a single lint problem for a plugin activation.
type Finding struct {
	Index   int
	Resolve string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("plugins[%d] %s: %s", f.Index, f.Resolve, f.Message)
}

// Lint checks every activation in a descriptor against the catalog:
// unknown resolve identifiers, and missing required options for known
// plugins. Unknown plugins produce a single finding; their options are not
// inspected since no schema is known for them.
func (c *Catalog) Lint(d descriptor.Descriptor) []Finding {
	var findings []Finding

	for i, entry := range d.Plugins {
		info, ok := c.Lookup(entry.Resolve())
		if !ok {
			findings = append(findings, Finding{
				Index:   i,
				Resolve: entry.Resolve(),
				Message: "unknown plugin, the loader will fail to resolve it",
			})
			continue
		}

		if len(info.RequiredOptions) == 0 {
			continue
		}
		opts := entry.Options()
		for _, key := range info.RequiredOptions {
			if _, present := opts[key]; !present {
				findings = append(findings, Finding{
					Index:   i,
					Resolve: entry.Resolve(),
					Message: fmt.Sprintf("missing required option %q", key),
				})
			}
		}
	}

	return findings
}

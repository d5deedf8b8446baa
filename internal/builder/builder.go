// Package builder assembles the site configuration descriptor. Build is a
// single pure computation: given already-validated site parameters and a
// resolved version identifier it produces the descriptor value, performs no
// I/O, and cannot fail.
package builder

import (
	"siteforge.dev/cli/internal/core/content"
	"siteforge.dev/cli/internal/core/descriptor"
)

// Site holds the validated inputs the builder assembles a descriptor from.
// Callers obtain it from a loaded site manifest; validation of these fields
// happens before Build, in the config validator.
type Site struct {
	Metadata descriptor.SiteMetadata

	// ContentRoot is the base directory the versioned documentation and
	// image sources live under.
	ContentRoot string

	// ExcludedPaths are glob patterns handed to the path-exclusion plugin
	// unaltered.
	ExcludedPaths []string

	// ExtraPlugins are appended after the default activation list, in the
	// order they were declared.
	ExtraPlugins []descriptor.PluginEntry
}

// Build assembles the descriptor for a site at a resolved version. The
// default plugin activations come first, in their fixed order, followed by
// any extra plugins from the manifest in declaration order.
func Build(site Site, version string) descriptor.Descriptor {
	layout := content.Layout{Root: site.ContentRoot}

	plugins := defaultPlugins(site, layout, version)
	plugins = append(plugins, site.ExtraPlugins...)

	return descriptor.New(site.Metadata, plugins)
}

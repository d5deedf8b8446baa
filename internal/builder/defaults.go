package builder

import (
	"siteforge.dev/cli/internal/core/content"
	"siteforge.dev/cli/internal/core/descriptor"
)

// Plugin identifiers for the fixed activation set. The loader resolves
// these by name; nothing here checks resolvability, that is the validate
// command's catalog lint.
const (
	PluginReactHelmet      = "gatsby-plugin-react-helmet"
	PluginSharp            = "gatsby-plugin-sharp"
	PluginTransformerSharp = "gatsby-transformer-sharp"
	PluginTransformerJSON  = "gatsby-transformer-json"
	PluginSourceFilesystem = "gatsby-source-filesystem"
	PluginTypography       = "gatsby-plugin-typography"
	PluginManifest         = "gatsby-plugin-manifest"
	PluginExclude          = "gatsby-plugin-exclude"
)

// defaultPlugins returns the fixed plugin activation list. Order is part of
// the descriptor contract: the loader registers plugins in list order, and
// transformers must follow the sources they transform.
func defaultPlugins(site Site, layout content.Layout, version string) []descriptor.PluginEntry {
	return []descriptor.PluginEntry{
		descriptor.NewPlugin(PluginReactHelmet),
		descriptor.NewPlugin(PluginSharp),
		descriptor.NewPlugin(PluginTransformerSharp),
		descriptor.NewPlugin(PluginTransformerJSON),
		descriptor.NewPluginWithOptions(PluginSourceFilesystem, descriptor.FilesystemSourceOptions{
			Name: "images",
			Path: layout.Images(),
		}.Options()),
		descriptor.NewPluginWithOptions(PluginSourceFilesystem, descriptor.FilesystemSourceOptions{
			Name: "docs",
			Path: layout.VersionedDocs(version),
		}.Options()),
		descriptor.NewPluginWithOptions(PluginTypography, descriptor.TypographyOptions{
			PathToConfigModule: layout.TypographyModule(),
		}.Options()),
		descriptor.NewPluginWithOptions(PluginManifest, descriptor.ManifestOptions{
			Name:            site.Metadata.Title,
			ShortName:       site.Metadata.Title,
			StartURL:        "/",
			BackgroundColor: "#663399",
			ThemeColor:      "#663399",
			Display:         "minimal-ui",
			Icon:            layout.FaviconIcon(),
		}.Options()),
		descriptor.NewPluginWithOptions(PluginExclude, descriptor.ExcludeOptions{
			Paths: site.ExcludedPaths,
		}.Options()),
	}
}

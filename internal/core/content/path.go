// Package content computes the filesystem locations that versioned
// documentation content is sourced from. The descriptor embeds these paths
// in plugin options without checking that they exist; existence is the
// concern of the plugin that reads them at build time.
package content

import "path/filepath"

// versionsDir is the subdirectory under the content root that holds one
// directory per published documentation version.
const versionsDir = "versions"

// Path returns the content path for a resolved version:
// <root>/versions/<version>.
func Path(root, version string) string {
	return filepath.Join(root, versionsDir, version)
}

// Layout describes the fixed directory layout under a site's content root.
type Layout struct {
	Root string
}

// VersionedDocs returns the documentation source directory for a version.
func (l Layout) VersionedDocs(version string) string {
	return Path(l.Root, version)
}

// Images returns the image source directory.
func (l Layout) Images() string {
	return filepath.Join(l.Root, "src", "images")
}

// TypographyModule returns the site-relative path of the typography
// configuration module. The build framework resolves it against the site
// root, so it stays relative.
func (l Layout) TypographyModule() string {
	return "src/utils/typography"
}

// FaviconIcon returns the site-relative path of the manifest icon.
func (l Layout) FaviconIcon() string {
	return "src/images/favicon.ico"
}

package config

import "os"

// EnvLoader builds a snapshot from SITEFORGE_* environment variables.
type EnvLoader struct{}

// NewEnvLoader creates an environment loader.
func NewEnvLoader() *EnvLoader { return &EnvLoader{} }

// Environment variable names recognized as manifest overrides.
const (
	EnvTitle       = "SITEFORGE_TITLE"
	EnvDescription = "SITEFORGE_DESCRIPTION"
	EnvAuthor      = "SITEFORGE_AUTHOR"
	EnvContentRoot = "SITEFORGE_CONTENT_ROOT"
	EnvVersion     = "SITEFORGE_VERSION"
)

// LoadEnv returns the environment override snapshot.
func (l *EnvLoader) LoadEnv() Snapshot {
	snap := make(Snapshot)
	add := func(key, field string) {
		if v := os.Getenv(key); v != "" {
			snap[field] = Entry{Key: field, Value: v, Source: "env", SourcePath: key, Priority: PriorityEnv}
		}
	}

	add(EnvTitle, "site.title")
	add(EnvDescription, "site.description")
	add(EnvAuthor, "site.author")
	add(EnvContentRoot, "content.root")
	add(EnvVersion, "version.value")

	return snap
}

// Apply writes the snapshot's values onto the manifest. A version override
// forces the static resolver so the override wins even when the manifest
// declares env or file resolution.
func (l *EnvLoader) Apply(snap Snapshot, m *SiteManifest) {
	if e, ok := snap["site.title"]; ok {
		m.Site.Title = e.Value.(string)
	}
	if e, ok := snap["site.description"]; ok {
		m.Site.Description = e.Value.(string)
	}
	if e, ok := snap["site.author"]; ok {
		m.Site.Author = e.Value.(string)
	}
	if e, ok := snap["content.root"]; ok {
		m.Content.Root = e.Value.(string)
	}
	if e, ok := snap["version.value"]; ok {
		m.Version = VersionSection{Source: VersionSourceStatic, Value: e.Value.(string)}
	}
}

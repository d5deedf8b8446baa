package config

import (
	"fmt"

	"siteforge.dev/cli/internal/core/version"
)

// UnifiedLoader layers the configuration sources in precedence order:
// environment overrides beat the manifest file, which beats built-in
// defaults. The returned snapshot records per-field provenance for the
// scalar fields.
type UnifiedLoader struct {
	file *FileLoader
	env  *EnvLoader
}

// NewUnifiedLoader creates a loader over the file and env sources.
func NewUnifiedLoader() *UnifiedLoader {
	return &UnifiedLoader{
		file: NewFileLoader(),
		env:  NewEnvLoader(),
	}
}

// Load produces the effective manifest. When path is empty the loader
// probes the working directory for a manifest file; a missing manifest is
// not an error, the defaults apply.
func (l *UnifiedLoader) Load(path string) (SiteManifest, Snapshot, error) {
	m := DefaultManifest()
	snap := defaultSnapshot(m)

	if path == "" {
		path = l.file.Discover(".")
	}
	if path != "" {
		fileManifest, err := l.file.Load(path)
		if err != nil {
			return SiteManifest{}, nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		applyFileManifest(&m, fileManifest, path, snap)
	}

	envSnap := l.env.LoadEnv()
	l.env.Apply(envSnap, &m)
	snap.Merge(envSnap)

	return m, snap, nil
}

// ResolverFor returns the version resolver a manifest's version section
// declares.
func ResolverFor(vs VersionSection) (version.Resolver, error) {
	switch vs.Source {
	case VersionSourceStatic, "":
		if vs.Value == "" {
			return nil, fmt.Errorf("version source %q requires a value", VersionSourceStatic)
		}
		return version.Static(vs.Value), nil
	case VersionSourceEnv:
		if vs.Env == "" {
			return nil, fmt.Errorf("version source %q requires an env variable name", VersionSourceEnv)
		}
		return version.FromEnv(vs.Env), nil
	case VersionSourceFile:
		if vs.File == "" {
			return nil, fmt.Errorf("version source %q requires a file path", VersionSourceFile)
		}
		return version.FromFile(vs.File), nil
	default:
		return nil, fmt.Errorf("unknown version source %q", vs.Source)
	}
}

// defaultSnapshot records the built-in defaults for the scalar fields.
func defaultSnapshot(m SiteManifest) Snapshot {
	snap := make(Snapshot)
	add := func(field string, value any) {
		snap[field] = Entry{Key: field, Value: value, Source: "default", Priority: PriorityDefault}
	}
	add("site.title", m.Site.Title)
	add("site.description", m.Site.Description)
	add("site.author", m.Site.Author)
	add("content.root", m.Content.Root)
	add("version.value", m.Version.Value)
	return snap
}

// applyFileManifest layers the fields present in a manifest file over the
// defaults and records their provenance.
func applyFileManifest(m *SiteManifest, file SiteManifest, path string, snap Snapshot) {
	record := func(field string, value any) {
		snap.Merge(Snapshot{field: Entry{Key: field, Value: value, Source: "file", SourcePath: path, Priority: PriorityFile}})
	}

	if file.Site.Title != "" {
		m.Site.Title = file.Site.Title
		record("site.title", file.Site.Title)
	}
	if file.Site.Description != "" {
		m.Site.Description = file.Site.Description
		record("site.description", file.Site.Description)
	}
	if file.Site.Author != "" {
		m.Site.Author = file.Site.Author
		record("site.author", file.Site.Author)
	}
	if file.Content.Root != "" {
		m.Content.Root = file.Content.Root
		record("content.root", file.Content.Root)
	}
	if file.Content.ExcludePaths != nil {
		m.Content.ExcludePaths = file.Content.ExcludePaths
	}
	if file.Version.Source != "" || file.Version.Value != "" {
		m.Version = file.Version
		record("version.value", file.Version.Value)
	}
	if file.Plugins != nil {
		m.Plugins = file.Plugins
	}
}

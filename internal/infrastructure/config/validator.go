package config

import (
	"fmt"

	"siteforge.dev/cli/internal/core/version"
)

// Finding is a single validation problem, attributed to the manifest field
// that caused it.
type Finding struct {
	Field   string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Validator checks a loaded manifest before the builder consumes it. The
// descriptor itself performs no validation, so problems caught here would
// otherwise surface only inside the external build framework.
type Validator struct{}

// NewValidator creates a manifest validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateManifest returns all problems found in the manifest. An empty
// result means the manifest is usable.
func (v *Validator) ValidateManifest(m SiteManifest) []Finding {
	var findings []Finding
	add := func(field, format string, args ...any) {
		findings = append(findings, Finding{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if m.Site.Title == "" {
		add("site.title", "site title cannot be empty")
	}

	if m.Content.Root == "" {
		add("content.root", "content root cannot be empty")
	}
	for i, p := range m.Content.ExcludePaths {
		if p == "" {
			add(fmt.Sprintf("content.exclude_paths[%d]", i), "exclude pattern cannot be empty")
		}
	}

	findings = append(findings, v.validateVersion(m.Version)...)

	for i, p := range m.Plugins {
		if p.Resolve == "" {
			add(fmt.Sprintf("plugins[%d].resolve", i), "plugin resolve identifier cannot be empty")
		}
	}

	return findings
}

// validateVersion checks the version section for internal consistency. A
// static value is validated eagerly; env and file sources are resolved only
// at build time, so here only their configuration is checked.
func (v *Validator) validateVersion(vs VersionSection) []Finding {
	var findings []Finding

	switch vs.Source {
	case VersionSourceStatic, "":
		if vs.Value == "" {
			findings = append(findings, Finding{Field: "version.value", Message: "static version requires a value"})
		} else if err := version.Validate(vs.Value); err != nil {
			findings = append(findings, Finding{Field: "version.value", Message: err.Error()})
		}
	case VersionSourceEnv:
		if vs.Env == "" {
			findings = append(findings, Finding{Field: "version.env", Message: "env version source requires a variable name"})
		}
	case VersionSourceFile:
		if vs.File == "" {
			findings = append(findings, Finding{Field: "version.file", Message: "file version source requires a path"})
		}
	default:
		findings = append(findings, Finding{
			Field:   "version.source",
			Message: fmt.Sprintf("unknown version source %q (want static, env, or file)", vs.Source),
		})
	}

	return findings
}

package descriptor

// Typed option shapes for the fixed plugin set the builder activates. Each
// shape converts into the open Options mapping the descriptor carries; the
// open map remains the fallback for third-party plugins whose options are
// not known ahead of time.

// FilesystemSourceOptions configures a filesystem content source: a logical
// collection name and the directory the plugin watches.
type FilesystemSourceOptions struct {
	Name string
	Path string
}

// Options converts the shape into the open options mapping.
func (o FilesystemSourceOptions) Options() Options {
	return Options{
		"name": o.Name,
		"path": o.Path,
	}
}

// TypographyOptions configures the typography plugin with the module that
// defines the site's type settings.
type TypographyOptions struct {
	PathToConfigModule string
}

// Options converts the shape into the open options mapping.
func (o TypographyOptions) Options() Options {
	return Options{
		"pathToConfigModule": o.PathToConfigModule,
	}
}

// ManifestOptions configures the web-app manifest plugin.
type ManifestOptions struct {
	Name            string
	ShortName       string
	StartURL        string
	BackgroundColor string
	ThemeColor      string
	Display         string
	Icon            string
}

// Options converts the shape into the open options mapping.
func (o ManifestOptions) Options() Options {
	return Options{
		"name":             o.Name,
		"short_name":       o.ShortName,
		"start_url":        o.StartURL,
		"background_color": o.BackgroundColor,
		"theme_color":      o.ThemeColor,
		"display":          o.Display,
		"icon":             o.Icon,
	}
}

// ExcludeOptions configures the path-exclusion plugin. The paths are glob
// patterns passed through to the plugin unaltered.
type ExcludeOptions struct {
	Paths []string
}

// Options converts the shape into the open options mapping.
func (o ExcludeOptions) Options() Options {
	paths := make([]any, len(o.Paths))
	for i, p := range o.Paths {
		paths[i] = p
	}
	return Options{
		"paths": paths,
	}
}

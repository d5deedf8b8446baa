// Package cli wires the cobra command tree for siteforge.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"siteforge.dev/cli/internal/builder"
	"siteforge.dev/cli/internal/core/descriptor"
	"siteforge.dev/cli/internal/infrastructure/config"
	"siteforge.dev/cli/internal/infrastructure/registry"
	"siteforge.dev/cli/internal/logging"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// App holds the dependencies the CLI commands share.
type App struct {
	Loader    *config.UnifiedLoader
	Validator *config.Validator
	Catalog   *registry.Catalog
	Logger    *logging.ConsoleLogger
}

// NewApp assembles the default dependency set.
func NewApp() *App {
	return &App{
		Loader:    config.NewUnifiedLoader(),
		Validator: config.NewValidator(),
		Catalog:   registry.DefaultCatalog(),
		Logger:    logging.NewConsoleLogger(false),
	}
}

// NewRootCommand creates the base command and attaches the subcommands.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "siteforge",
		Short: "siteforge - documentation site configuration descriptor",
		Long: `siteforge assembles the configuration descriptor a static-site build
framework consumes: site metadata plus an ordered list of plugin
activations, including the versioned documentation content source.

The descriptor is computed once per invocation from a site manifest
(site.yaml, site.toml, or site.json), environment overrides, and a
resolved documentation version.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debugMode, _ := cmd.Flags().GetBool("debug")
			app.Logger = logging.NewConsoleLogger(debugMode)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("config", "", "Site manifest path (default: site.{yaml,toml,json} in the working directory)")
	rootCmd.PersistentFlags().String("version-id", "", "Override the documentation version identifier")
	rootCmd.PersistentFlags().String("content-root", "", "Override the content root directory")

	rootCmd.AddCommand(NewRenderCommand(app))
	rootCmd.AddCommand(NewValidateCommand(app))
	rootCmd.AddCommand(NewPluginsCommand(app))
	rootCmd.AddCommand(NewInitCommand(app))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// loadManifest loads the effective manifest for a command invocation,
// applying flag overrides on top of env and file layers.
func loadManifest(cmd *cobra.Command, app *App) (config.SiteManifest, config.Snapshot, error) {
	path, _ := cmd.Flags().GetString("config")

	m, snap, err := app.Loader.Load(path)
	if err != nil {
		return config.SiteManifest{}, nil, err
	}

	if root, _ := cmd.Flags().GetString("content-root"); root != "" {
		m.Content.Root = root
		snap.Merge(config.Snapshot{"content.root": config.Entry{
			Key: "content.root", Value: root, Source: "flag", SourcePath: "--content-root", Priority: config.PriorityFlag,
		}})
	}
	if v, _ := cmd.Flags().GetString("version-id"); v != "" {
		m.Version = config.VersionSection{Source: config.VersionSourceStatic, Value: v}
		snap.Merge(config.Snapshot{"version.value": config.Entry{
			Key: "version.value", Value: v, Source: "flag", SourcePath: "--version-id", Priority: config.PriorityFlag,
		}})
	}

	for _, e := range snap {
		app.Logger.Debugf("config %s = %v (from %s %s)", e.Key, e.Value, e.Source, e.SourcePath)
	}

	return m, snap, nil
}

// buildDescriptor resolves the version and assembles the descriptor from a
// loaded manifest.
func buildDescriptor(m config.SiteManifest) (descriptor.Descriptor, string, error) {
	resolver, err := config.ResolverFor(m.Version)
	if err != nil {
		return descriptor.Descriptor{}, "", err
	}
	v, err := resolver.Resolve()
	if err != nil {
		return descriptor.Descriptor{}, "", fmt.Errorf("failed to resolve documentation version: %w", err)
	}

	site, err := m.BuilderSite()
	if err != nil {
		return descriptor.Descriptor{}, "", err
	}

	return builder.Build(site, v), v, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	app := NewApp()
	rootCmd := NewRootCommand(app)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// manifestTemplate is the starter manifest written by siteforge init.
const manifestTemplate = `# siteforge site manifest
site:
  title: Dagster
  description: Documentation for the Dagster data orchestrator
  author: "@dagsterio"

content:
  root: .
  exclude_paths:
    - /dagster/**

# How the documentation version is resolved. One of:
#   static: use the literal value below
#   env:    read the named environment variable
#   file:   read the first non-blank line of the named file
version:
  source: static
  value: latest

# Extra plugin activations, appended after the default set in this order.
# An entry without options activates the plugin bare.
#plugins:
#  - resolve: gatsby-plugin-offline
`

// InitFlags holds the command-line flags for the init command.
type InitFlags struct {
	Path  string
	Force bool
}

// NewInitCommand creates the init command.
func NewInitCommand(app *App) *cobra.Command {
	flags := &InitFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter site manifest",
		Long: `Init scaffolds a site.yaml manifest in the working directory with the
default site metadata, content layout, and version resolution, ready to
edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(flags.Path); err == nil && !flags.Force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", flags.Path)
			}

			if err := os.WriteFile(flags.Path, []byte(manifestTemplate), 0644); err != nil {
				return fmt.Errorf("failed to write manifest: %w", err)
			}

			app.Logger.Infof("wrote %s", flags.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Path, "path", "site.yaml", "Manifest file to write")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "Overwrite an existing manifest")

	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"siteforge.dev/cli/internal/core/descriptor"
)

// RenderFlags holds the command-line flags for the render command.
type RenderFlags struct {
	Format string
	Out    string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(app *App) *cobra.Command {
	flags := &RenderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the site configuration descriptor and print it",
		Long: `Render resolves the documentation version, assembles the configuration
descriptor, and writes it to stdout (or a file with --out).

Examples:
  siteforge render                       # JSON to stdout
  siteforge render --format yaml         # YAML to stdout
  siteforge render --version-id 1.2.3    # pin the documentation version
  siteforge render --out config.json     # write to a file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadManifest(cmd, app)
			if err != nil {
				return err
			}

			d, v, err := buildDescriptor(m)
			if err != nil {
				return err
			}
			app.Logger.Debugf("resolved documentation version %s", v)

			data, err := marshalDescriptor(d, flags.Format)
			if err != nil {
				return err
			}

			if flags.Out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(flags.Out, append(data, '\n'), 0644); err != nil {
				return fmt.Errorf("failed to write descriptor: %w", err)
			}
			app.Logger.Infof("wrote descriptor to %s", flags.Out)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Format, "format", "json", "Output format (json or yaml)")
	cmd.Flags().StringVar(&flags.Out, "out", "", "Write the descriptor to a file instead of stdout")

	return cmd
}

// marshalDescriptor serializes a descriptor in the requested format.
func marshalDescriptor(d descriptor.Descriptor, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want json or yaml)", format)
	}
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the site manifest and plugin resolution",
		Long: `Validate loads the effective manifest, checks it for problems, and lints
the resulting plugin activations against the catalog of plugins the build
framework's loader can resolve.

The descriptor itself never enforces resolvability; an unknown plugin only
fails once the external framework tries to load it. This command reports
those failures ahead of time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			m, _, err := loadManifest(cmd, app)
			if err != nil {
				return err
			}

			problems := 0

			fmt.Fprint(out, "Checking manifest... ")
			findings := app.Validator.ValidateManifest(m)
			if len(findings) == 0 {
				fmt.Fprintln(out, okStyle.Render("ok"))
			} else {
				fmt.Fprintln(out, failStyle.Render("failed"))
				for _, f := range findings {
					fmt.Fprintf(out, "  %s\n", f)
				}
				problems += len(findings)
			}

			fmt.Fprint(out, "Resolving version... ")
			d, v, err := buildDescriptor(m)
			if err != nil {
				fmt.Fprintln(out, failStyle.Render("failed"))
				fmt.Fprintf(out, "  %v\n", err)
				problems++
			} else {
				fmt.Fprintln(out, okStyle.Render(v))

				fmt.Fprint(out, "Linting plugin activations... ")
				lint := app.Catalog.Lint(d)
				if len(lint) == 0 {
					fmt.Fprintln(out, okStyle.Render("ok"))
				} else {
					fmt.Fprintln(out, failStyle.Render("failed"))
					for _, f := range lint {
						fmt.Fprintf(out, "  %s\n", f)
					}
					problems += len(lint)
				}
			}

			if problems > 0 {
				return fmt.Errorf("validation found %d problem(s)", problems)
			}
			fmt.Fprintln(out, "Configuration is valid.")
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	bareStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PluginsFlags holds the command-line flags for the plugins command.
type PluginsFlags struct {
	Interactive bool
}

// NewPluginsCommand creates the plugins command.
func NewPluginsCommand(app *App) *cobra.Command {
	flags := &PluginsFlags{}

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List the effective plugin activations in order",
		Long: `Plugins shows the ordered plugin activation list of the assembled
descriptor: the fixed default set followed by any extra plugins declared
in the manifest.

With --interactive, an in-terminal browser lets you inspect each
activation's options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadManifest(cmd, app)
			if err != nil {
				return err
			}

			d, _, err := buildDescriptor(m)
			if err != nil {
				return err
			}

			if flags.Interactive {
				return runPluginBrowser(d, app.Catalog)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tableHeaderStyle.Render(fmt.Sprintf("%-3s │ %-28s │ %-7s │ %s", "#", "RESOLVE", "MODE", "OPTIONS")))
			for i, entry := range d.Plugins {
				mode := "options"
				detail := fmt.Sprintf("%d key(s)", len(entry.Options()))
				if entry.IsBare() {
					mode = "bare"
					detail = bareStyle.Render("-")
				}
				fmt.Fprintf(out, "%-3d │ %-28s │ %-7s │ %s\n", i, entry.Resolve(), mode, detail)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.Interactive, "interactive", false, "Browse plugin activations interactively")

	return cmd
}

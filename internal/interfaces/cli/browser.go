package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"siteforge.dev/cli/internal/core/descriptor"
	"siteforge.dev/cli/internal/infrastructure/registry"
)

var (
	browserTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	browserSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	browserDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	browserUnknownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// runPluginBrowser starts the interactive plugin activation browser.
func runPluginBrowser(d descriptor.Descriptor, catalog *registry.Catalog) error {
	model := newBrowserModel(d, catalog)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("plugin browser failed: %w", err)
	}
	return nil
}

// browserModel holds the state for the Bubble Tea plugin browser.
type browserModel struct {
	descriptor   descriptor.Descriptor
	catalog      *registry.Catalog
	selectedRow  int
	windowWidth  int
	windowHeight int
}

// newBrowserModel creates a browser model over an assembled descriptor.
func newBrowserModel(d descriptor.Descriptor, catalog *registry.Catalog) browserModel {
	return browserModel{descriptor: d, catalog: catalog}
}

// Init implements the Bubble Tea init method.
func (m browserModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method.
func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selectedRow > 0 {
				m.selectedRow--
			}
			return m, nil

		case "down", "j":
			if m.selectedRow < len(m.descriptor.Plugins)-1 {
				m.selectedRow++
			}
			return m, nil
		}
	}

	return m, nil
}

// View implements the Bubble Tea view method.
func (m browserModel) View() string {
	header := browserTitleStyle.Render(fmt.Sprintf("Plugin activations — %s", m.descriptor.SiteMetadata.Title))

	list := m.renderList()
	details := m.renderDetails()
	footer := browserDimStyle.Render("Controls: [↑↓/jk] Navigate | [q] Quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", list, "", details, "", footer)
}

// renderList renders the ordered activation list with the selection
// highlighted.
func (m browserModel) renderList() string {
	rows := make([]string, 0, len(m.descriptor.Plugins))
	for i, entry := range m.descriptor.Plugins {
		marker := " "
		if !m.catalog.Known(entry.Resolve()) {
			marker = browserUnknownStyle.Render("!")
		}

		mode := "options"
		if entry.IsBare() {
			mode = "bare"
		}

		row := fmt.Sprintf(" %s %2d  %-28s %s", marker, i, entry.Resolve(), browserDimStyle.Render(mode))
		if i == m.selectedRow {
			row = browserSelectedStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDetails renders the options pane for the selected activation.
func (m browserModel) renderDetails() string {
	if len(m.descriptor.Plugins) == 0 {
		return browserDimStyle.Render("No plugin activations.")
	}

	entry := m.descriptor.Plugins[m.selectedRow]
	lines := []string{browserTitleStyle.Render(entry.Resolve())}

	if info, ok := m.catalog.Lookup(entry.Resolve()); ok {
		lines = append(lines, browserDimStyle.Render(info.Description))
	} else {
		lines = append(lines, browserUnknownStyle.Render("not in the plugin catalog"))
	}

	if entry.IsBare() {
		lines = append(lines, browserDimStyle.Render("activated without options"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	opts := entry.Options()
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s: %s", k, formatOptionValue(opts[k])))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatOptionValue renders an option value compactly for the details pane.
func formatOptionValue(v any) string {
	switch v.(type) {
	case string, bool, int, int64, float64:
		return fmt.Sprintf("%v", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

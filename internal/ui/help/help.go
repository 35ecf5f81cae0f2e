package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"/", "Open search box"},
		{"f", "Open filter panel"},
		{"e", "Export results"},
	}
}

// GetSearchKeys returns search box key bindings
func GetSearchKeys() []KeyBinding {
	return []KeyBinding{
		{"Enter", "Compose and run search"},
		{"Esc", "Close search box"},
	}
}

// GetFilterKeys returns filter panel key bindings
func GetFilterKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k, ↓/j", "Move between operators"},
		{"Enter", "Edit selected value"},
		{"x", "Clear selected value"},
		{"s", "Toggle Exclude Shorts"},
		{"a", "Apply filters"},
		{"Esc", "Close panel"},
	}
}

// GetResultsKeys returns results view key bindings
func GetResultsKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k, ↓/j", "Move selection"},
		{"g, G", "Jump to top / bottom"},
		{"y", "Copy active query"},
		{"e", "Export to CSV/JSON"},
	}
}

// Render creates the help view
func Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("tubesift - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name string
		keys []KeyBinding
	}{
		{"Global", GetGlobalKeys()},
		{"Search", GetSearchKeys()},
		{"Filters", GetFilterKeys()},
		{"Results", GetResultsKeys()},
	}
	for _, section := range sections {
		b.WriteString(sectionStyle.Render(section.name))
		b.WriteString("\n")
		for _, kb := range section.keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}

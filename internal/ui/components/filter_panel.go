package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tubesift/tubesift/internal/models"
	"github.com/tubesift/tubesift/internal/query"
	"github.com/tubesift/tubesift/internal/ui/theme"
)

// ApplyFiltersMsg is sent when the configured filters should be applied
type ApplyFiltersMsg struct {
	Filters       []models.ActiveFilter
	ExcludeShorts bool
	Query         string
}

// CloseFilterPanelMsg is sent when the filter panel should close
type CloseFilterPanelMsg struct{}

// FilterPanel provides an interactive UI for configuring search filters
type FilterPanel struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	entries       []filterEntry // fixed catalog order
	cursor        int
	editing       bool
	valueInput    string
	excludeShorts bool

	// Derived preview, rebuilt on every change
	previewQuery string
	previewLines []models.PreviewLine
}

type filterEntry struct {
	desc  models.FilterDescriptor
	value string
}

// NewFilterPanel creates a filter panel with one row per catalog operator
func NewFilterPanel(th theme.Theme) *FilterPanel {
	descs := query.Catalog()
	entries := make([]filterEntry, 0, len(descs))
	for _, d := range descs {
		entries = append(entries, filterEntry{desc: d})
	}
	return &FilterPanel{
		Width:   60,
		Height:  30,
		Theme:   th,
		entries: entries,
	}
}

// SetFilters loads current filter values into the panel
func (fp *FilterPanel) SetFilters(filters []models.ActiveFilter, excludeShorts bool) {
	for i := range fp.entries {
		fp.entries[i].value = ""
	}
	for _, f := range filters {
		for i := range fp.entries {
			if fp.entries[i].desc.ID == f.ID {
				fp.entries[i].value = f.Value
				break
			}
		}
	}
	fp.excludeShorts = excludeShorts
	fp.updatePreview()
}

// ActiveFilters returns the panel state as an ordered filter list. Entries
// with blank values stay in the list; the query core ignores them.
func (fp *FilterPanel) ActiveFilters() []models.ActiveFilter {
	filters := make([]models.ActiveFilter, 0, len(fp.entries))
	for _, e := range fp.entries {
		filters = append(filters, models.ActiveFilter{ID: e.desc.ID, Value: e.value})
	}
	return filters
}

// ExcludeShorts reports the shorts toggle state
func (fp *FilterPanel) ExcludeShorts() bool {
	return fp.excludeShorts
}

// Update handles keyboard input
func (fp *FilterPanel) Update(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	if fp.editing {
		return fp.handleEditMode(msg)
	}
	return fp.handleNavigationMode(msg)
}

func (fp *FilterPanel) handleNavigationMode(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < len(fp.entries)-1 {
			fp.cursor++
		}
	case "enter":
		fp.editing = true
		fp.valueInput = fp.entries[fp.cursor].value
	case "x", "d":
		fp.entries[fp.cursor].value = ""
		fp.updatePreview()
	case "s":
		fp.excludeShorts = !fp.excludeShorts
		fp.updatePreview()
	case "a":
		filters := fp.ActiveFilters()
		return fp, func() tea.Msg {
			return ApplyFiltersMsg{
				Filters:       filters,
				ExcludeShorts: fp.excludeShorts,
				Query:         query.BuildQueryString(filters),
			}
		}
	case "esc":
		return fp, func() tea.Msg {
			return CloseFilterPanelMsg{}
		}
	}
	return fp, nil
}

func (fp *FilterPanel) handleEditMode(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.editing = false
		fp.valueInput = ""
	case "enter":
		fp.entries[fp.cursor].value = fp.valueInput
		fp.editing = false
		fp.valueInput = ""
		fp.updatePreview()
	case "backspace":
		if len(fp.valueInput) > 0 {
			fp.valueInput = fp.valueInput[:len(fp.valueInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			fp.valueInput += msg.String()
		}
	}
	return fp, nil
}

// updatePreview rebuilds the derived query string and preview lines
func (fp *FilterPanel) updatePreview() {
	filters := fp.ActiveFilters()
	fp.previewQuery = query.BuildQueryString(filters)
	fp.previewLines = query.BuildPreviewLines(filters, query.PreviewOptions{ExcludeShorts: fp.excludeShorts})
}

// View renders the filter panel
func (fp *FilterPanel) View() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(fp.Theme.Foreground).
		Background(fp.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Search Filters"))

	instructionStyle := lipgloss.NewStyle().
		Foreground(fp.Theme.Metadata).
		Padding(0, 1)

	instructions := "↑↓ Navigate  Enter=Edit  x=Clear  s=Shorts  a=Apply  Esc=Close"
	if fp.editing {
		instructions = "Type value, Enter to confirm, Esc to cancel"
	}
	sections = append(sections, instructionStyle.Render(instructions))
	sections = append(sections, "")

	labelStyle := lipgloss.NewStyle().Foreground(fp.Theme.Operator).Width(16)
	valueStyle := lipgloss.NewStyle().Foreground(fp.Theme.Value)
	placeholderStyle := lipgloss.NewStyle().Foreground(fp.Theme.Metadata).Italic(true)

	for i, e := range fp.entries {
		var value string
		switch {
		case fp.editing && i == fp.cursor:
			value = valueStyle.Render(fp.valueInput + "_")
		case e.value != "":
			value = valueStyle.Render(e.value)
		case e.desc.Kind == models.KindDate:
			value = placeholderStyle.Render("YYYY-MM-DD")
		default:
			value = placeholderStyle.Render("—")
		}

		row := " " + labelStyle.Render(e.desc.Label) + " " + value
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == fp.cursor && !fp.editing {
			style = style.Background(fp.Theme.Selection).Foreground(fp.Theme.Foreground)
		}
		sections = append(sections, style.Render(row))
	}

	shortsBox := "[ ]"
	if fp.excludeShorts {
		shortsBox = "[x]"
	}
	sections = append(sections, lipgloss.NewStyle().Padding(0, 1).Render(
		" "+labelStyle.Render("Exclude Shorts")+" "+valueStyle.Render(shortsBox)))

	if len(fp.previewLines) > 0 || fp.previewQuery != "" {
		sections = append(sections, "")
		sections = append(sections, instructionStyle.Render("Preview:"))
		sections = append(sections, fp.renderPreview())
	}

	content := strings.Join(sections, "\n")

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fp.Theme.BorderFocused).
		Width(fp.Width).
		Height(fp.Height).
		Padding(1)

	return containerStyle.Render(content)
}

// renderPreview renders the query string and one row per preview line
func (fp *FilterPanel) renderPreview() string {
	var rows []string

	if fp.previewQuery != "" {
		queryStyle := lipgloss.NewStyle().
			Foreground(fp.Theme.Metadata).
			Padding(0, 1).
			Italic(true)
		rows = append(rows, queryStyle.Render(fp.previewQuery))
	}

	andStyle := lipgloss.NewStyle().Foreground(fp.Theme.Connector).Width(4)
	notStyle := lipgloss.NewStyle().Foreground(fp.Theme.ConnectorNot).Width(4)
	labelStyle := lipgloss.NewStyle().Foreground(fp.Theme.Operator)
	valueStyle := lipgloss.NewStyle().Foreground(fp.Theme.Value)

	for _, line := range fp.previewLines {
		connector := andStyle.Render(line.Connector)
		if line.Connector == "NOT" {
			connector = notStyle.Render(line.Connector)
		}
		row := fmt.Sprintf("  %s%s", connector, labelStyle.Render(line.Label))
		if line.Value != "" {
			row += " " + valueStyle.Render(line.Value)
		}
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

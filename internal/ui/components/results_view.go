package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tubesift/tubesift/internal/models"
	"github.com/tubesift/tubesift/internal/ui/theme"
)

// ExportRequestMsg is sent when the current results should be exported
type ExportRequestMsg struct{}

// StatusMsg carries a transient status bar message
type StatusMsg struct {
	Text    string
	IsError bool
}

// ResultsView displays collected search results in a scrollable table
type ResultsView struct {
	Width  int
	Height int
	Theme  theme.Theme

	results []models.SearchResult
	query   string
	cursor  int
	scrollY int
}

// NewResultsView creates a new results view
func NewResultsView(th theme.Theme) *ResultsView {
	return &ResultsView{
		Width:  80,
		Height: 20,
		Theme:  th,
	}
}

// SetResults replaces the displayed results
func (rv *ResultsView) SetResults(results []models.SearchResult) {
	rv.results = results
	rv.cursor = 0
	rv.scrollY = 0
}

// Results returns the current result set
func (rv *ResultsView) Results() []models.SearchResult {
	return rv.results
}

// SetQuery sets the query string shown in the header and copied with 'y'
func (rv *ResultsView) SetQuery(q string) {
	rv.query = q
}

// Update handles keyboard input
func (rv *ResultsView) Update(msg tea.KeyMsg) (*ResultsView, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if rv.cursor > 0 {
			rv.cursor--
			if rv.cursor < rv.scrollY {
				rv.scrollY = rv.cursor
			}
		}
	case "down", "j":
		if rv.cursor < len(rv.results)-1 {
			rv.cursor++
			visible := rv.visibleRows()
			if rv.cursor >= rv.scrollY+visible {
				rv.scrollY = rv.cursor - visible + 1
			}
		}
	case "g":
		rv.cursor = 0
		rv.scrollY = 0
	case "G":
		if len(rv.results) > 0 {
			rv.cursor = len(rv.results) - 1
			visible := rv.visibleRows()
			if rv.cursor >= visible {
				rv.scrollY = rv.cursor - visible + 1
			}
		}
	case "y":
		if rv.query == "" {
			return rv, nil
		}
		q := rv.query
		return rv, func() tea.Msg {
			if err := clipboard.WriteAll(q); err != nil {
				return StatusMsg{Text: fmt.Sprintf("copy failed: %v", err), IsError: true}
			}
			return StatusMsg{Text: "query copied to clipboard"}
		}
	case "e":
		if len(rv.results) == 0 {
			return rv, func() tea.Msg {
				return StatusMsg{Text: "nothing to export", IsError: true}
			}
		}
		return rv, func() tea.Msg {
			return ExportRequestMsg{}
		}
	}
	return rv, nil
}

// visibleRows returns how many result rows fit below the header
func (rv *ResultsView) visibleRows() int {
	// borders, header row and footer
	rows := rv.Height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the results table
func (rv *ResultsView) View() string {
	contentWidth := rv.Width - 4
	if contentWidth < 30 {
		contentWidth = 30
	}

	titleWidth := contentWidth * 5 / 10
	channelWidth := contentWidth * 2 / 10
	durationWidth := 7
	viewsWidth := contentWidth - titleWidth - channelWidth - durationWidth - 3

	headerStyle := lipgloss.NewStyle().
		Foreground(rv.Theme.TableHeader).
		Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(rv.Theme.Foreground)
	selectedStyle := lipgloss.NewStyle().
		Background(rv.Theme.TableRowSelected).
		Foreground(rv.Theme.Foreground)

	var lines []string
	lines = append(lines, headerStyle.Render(
		pad("Title", titleWidth)+" "+pad("Channel", channelWidth)+" "+pad("Length", durationWidth)+" "+pad("Views", viewsWidth)))

	if len(rv.results) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(rv.Theme.Metadata).
			Italic(true)
		lines = append(lines, empty.Render("No results loaded. Press / to search."))
	}

	visible := rv.visibleRows()
	end := rv.scrollY + visible
	if end > len(rv.results) {
		end = len(rv.results)
	}
	for i := rv.scrollY; i < end; i++ {
		r := rv.results[i]
		row := pad(r.Title, titleWidth) + " " +
			pad(r.Channel, channelWidth) + " " +
			pad(r.Duration, durationWidth) + " " +
			pad(formatViews(r.Views), viewsWidth)
		if i == rv.cursor {
			lines = append(lines, selectedStyle.Render(row))
		} else {
			lines = append(lines, rowStyle.Render(row))
		}
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(rv.Theme.Metadata).
		Italic(true)
	footer := fmt.Sprintf("%d results", len(rv.results))
	if rv.query != "" {
		footer += " │ " + rv.query
	}
	footer += " │ y: Copy query │ e: Export"
	lines = append(lines, footerStyle.Render(runewidth.Truncate(footer, contentWidth, "...")))

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(rv.Theme.Border).
		Width(rv.Width).
		Padding(0, 1)

	return containerStyle.Render(strings.Join(lines, "\n"))
}

// pad truncates or right-pads a cell to the given display width
func pad(s string, width int) string {
	if width < 1 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// formatViews renders a view count compactly (1500000 → 1.5M)
func formatViews(views int64) string {
	switch {
	case views >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(views)/1_000_000)
	case views >= 1_000:
		return fmt.Sprintf("%.1fK", float64(views)/1_000)
	default:
		return fmt.Sprintf("%d", views)
	}
}

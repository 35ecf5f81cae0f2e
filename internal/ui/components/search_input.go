package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tubesift/tubesift/internal/models"
	"github.com/tubesift/tubesift/internal/query"
	"github.com/tubesift/tubesift/internal/ui/theme"
)

// SearchSubmitMsg is sent when a search should be executed
type SearchSubmitMsg struct {
	Query string // composed query, operators from structured filters only
	Raw   string // text exactly as typed
}

// CloseSearchMsg is sent when the search box should be closed
type CloseSearchMsg struct{}

// SearchInput provides the search box. On submit it composes the final
// query: inline operators typed into the box are stripped and the
// structured filters are appended instead, so an operator never appears
// twice no matter where the user configured it.
type SearchInput struct {
	Input         textinput.Model
	Theme         theme.Theme
	Width         int
	Visible       bool
	StripOnSubmit bool

	filters []models.ActiveFilter
}

// NewSearchInput creates a new search input
func NewSearchInput(th theme.Theme) *SearchInput {
	ti := textinput.New()
	ti.Placeholder = "Search videos..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return &SearchInput{
		Input:         ti,
		Theme:         th,
		StripOnSubmit: true,
	}
}

// SetFilters updates the structured filters merged into submitted queries
func (s *SearchInput) SetFilters(filters []models.ActiveFilter) {
	s.filters = filters
}

// Reset clears the search input
func (s *SearchInput) Reset() {
	s.Input.SetValue("")
}

// Compose builds the final query from the raw box text and the structured
// filters
func (s *SearchInput) Compose(raw string) string {
	base := raw
	if s.StripOnSubmit {
		base = query.StripOperators(raw)
	} else {
		base = strings.TrimSpace(raw)
	}

	operators := query.BuildQueryString(s.filters)

	var parts []string
	if base != "" {
		parts = append(parts, base)
	}
	if operators != "" {
		parts = append(parts, operators)
	}
	return strings.Join(parts, " ")
}

// Update handles messages
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			raw := s.Input.Value()
			composed := s.Compose(raw)
			if composed != "" {
				return s, func() tea.Msg {
					return SearchSubmitMsg{Query: composed, Raw: raw}
				}
			}
			return s, nil
		case "esc":
			return s, func() tea.Msg {
				return CloseSearchMsg{}
			}
		}
	}

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// View renders the search input
func (s *SearchInput) View() string {
	filterCount := 0
	for _, f := range s.filters {
		if strings.TrimSpace(f.Value) != "" {
			filterCount++
		}
	}

	indicator := "[no filters]"
	indicatorColor := s.Theme.Metadata
	if filterCount == 1 {
		indicator = "[1 filter]"
		indicatorColor = s.Theme.Success
	} else if filterCount > 1 {
		indicator = fmt.Sprintf("[%d filters]", filterCount)
		indicatorColor = s.Theme.Success
	}

	indicatorStyle := lipgloss.NewStyle().
		Foreground(indicatorColor).
		Bold(true)

	inputWidth := s.Width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.Input.Width = inputWidth

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Theme.BorderFocused).
		Padding(0, 1).
		Width(s.Width)

	helpStyle := lipgloss.NewStyle().
		Foreground(s.Theme.Metadata).
		Italic(true)

	content := indicatorStyle.Render(indicator) + " " + s.Input.View()
	helpText := helpStyle.Render("Enter: search │ Esc: close")

	return boxStyle.Render(content + "\n" + helpText)
}

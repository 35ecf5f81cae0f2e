package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tubesift/tubesift/internal/config"
	"github.com/tubesift/tubesift/internal/export"
	"github.com/tubesift/tubesift/internal/history"
	"github.com/tubesift/tubesift/internal/models"
	"github.com/tubesift/tubesift/internal/presets"
	"github.com/tubesift/tubesift/internal/ui/components"
	"github.com/tubesift/tubesift/internal/ui/help"
	"github.com/tubesift/tubesift/internal/ui/theme"
)

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme

	searchInput *components.SearchInput
	filterPanel *components.FilterPanel
	resultsView *components.ResultsView

	historyStore  *history.Store
	presetManager *presets.Manager

	// Active search state
	activeFilters []models.ActiveFilter
	excludeShorts bool
	currentQuery  string

	showSearch  bool
	showFilters bool
	statusText  string
	statusError bool
}

// LoadResultsMsg delivers scraped search results from the collector
type LoadResultsMsg struct {
	Results []models.SearchResult
}

// New creates the application model
func New(cfg *config.Config) *App {
	th := theme.GetTheme(cfg.UI.Theme)

	a := &App{
		state:       models.NewAppState(),
		config:      cfg,
		theme:       th,
		searchInput: components.NewSearchInput(th),
		filterPanel: components.NewFilterPanel(th),
		resultsView: components.NewResultsView(th),
	}
	a.searchInput.StripOnSubmit = cfg.Search.StripOperatorsOnSubmit
	a.excludeShorts = cfg.Search.ExcludeShorts
	a.filterPanel.SetFilters(nil, a.excludeShorts)

	if configDir, err := config.GetConfigPath(); err == nil {
		if cfg.History.Enabled && cfg.History.Persist {
			if store, err := history.NewStore(filepath.Join(configDir, "history.db")); err == nil {
				a.historyStore = store
			} else {
				a.setStatus(fmt.Sprintf("history disabled: %v", err), true)
			}
		}
		if manager, err := presets.NewManager(configDir); err == nil {
			a.presetManager = manager
		} else {
			a.setStatus(fmt.Sprintf("presets disabled: %v", err), true)
		}
	}

	return a
}

// LoadResultsFromFile loads previously collected results from a JSON file,
// the same shape ExportToJSON writes
func (a *App) LoadResultsFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read results file: %w", err)
	}
	var results []models.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("failed to parse results file: %w", err)
	}
	a.resultsView.SetResults(results)
	a.setStatus(fmt.Sprintf("%d results loaded from %s", len(results), filepath.Base(path)), false)
	return nil
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updateDimensions()
		return a, nil

	case components.SearchSubmitMsg:
		a.currentQuery = msg.Query
		a.resultsView.SetQuery(msg.Query)
		a.showSearch = false
		a.searchInput.Reset()
		a.recordSearch(msg.Query)
		a.setStatus("search: "+msg.Query, false)
		return a, nil

	case components.CloseSearchMsg:
		a.showSearch = false
		return a, nil

	case components.ApplyFiltersMsg:
		a.activeFilters = msg.Filters
		a.excludeShorts = msg.ExcludeShorts
		a.searchInput.SetFilters(msg.Filters)
		a.currentQuery = msg.Query
		a.resultsView.SetQuery(msg.Query)
		a.showFilters = false
		count := activeCount(msg.Filters)
		a.setStatus(fmt.Sprintf("%d filter(s) applied", count), false)
		return a, nil

	case components.CloseFilterPanelMsg:
		a.showFilters = false
		return a, nil

	case components.ExportRequestMsg:
		return a, a.exportResults()

	case components.StatusMsg:
		a.setStatus(msg.Text, msg.IsError)
		return a, nil

	case LoadResultsMsg:
		a.resultsView.SetResults(msg.Results)
		a.setStatus(fmt.Sprintf("%d results loaded", len(msg.Results)), false)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.showSearch {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays take the keyboard first
	if a.state.ViewMode == models.HelpMode {
		switch msg.String() {
		case "?", "esc", "q":
			a.state.ViewMode = models.NormalMode
		}
		return a, nil
	}
	if a.showSearch {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}
	if a.showFilters {
		var cmd tea.Cmd
		a.filterPanel, cmd = a.filterPanel.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		a.closeStores()
		return a, tea.Quit
	case "?":
		a.state.ViewMode = models.HelpMode
	case "/":
		a.showSearch = true
		a.searchInput.Reset()
	case "f":
		a.filterPanel.SetFilters(a.activeFilters, a.excludeShorts)
		a.showFilters = true
	default:
		var cmd tea.Cmd
		a.resultsView, cmd = a.resultsView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// recordSearch appends the executed search to history and prunes old rows
func (a *App) recordSearch(composed string) {
	if a.historyStore == nil || !a.config.History.Enabled {
		return
	}
	entry := history.Entry{
		Query:       composed,
		FilterCount: activeCount(a.activeFilters),
		ResultCount: len(a.resultsView.Results()),
	}
	if err := a.historyStore.Add(entry); err != nil {
		a.setStatus(fmt.Sprintf("history write failed: %v", err), true)
		return
	}
	if max := a.config.History.MaxEntries; max > 0 {
		_ = a.historyStore.Prune(max)
	}
}

// exportResults writes the current results to the configured export target
func (a *App) exportResults() tea.Cmd {
	results := a.resultsView.Results()
	dir := a.config.Export.Directory
	if dir == "" {
		if configDir, err := config.GetConfigPath(); err == nil {
			dir = configDir
		} else {
			dir = "."
		}
	}
	format := a.config.Export.Format
	stamp := time.Now().Format("20060102-150405")

	return func() tea.Msg {
		var path string
		var err error
		if format == "json" {
			path = filepath.Join(dir, "results-"+stamp+".json")
			err = export.ExportToJSON(results, path)
		} else {
			path = filepath.Join(dir, "results-"+stamp+".csv")
			err = export.ExportToCSV(results, path)
		}
		if err != nil {
			return components.StatusMsg{Text: fmt.Sprintf("export failed: %v", err), IsError: true}
		}
		return components.StatusMsg{Text: "exported to " + path}
	}
}

func (a *App) closeStores() {
	if a.historyStore != nil {
		_ = a.historyStore.Close()
	}
}

func (a *App) setStatus(text string, isError bool) {
	a.statusText = text
	a.statusError = isError
}

// activeCount counts filters that actually carry a value
func activeCount(filters []models.ActiveFilter) int {
	n := 0
	for _, f := range filters {
		if strings.TrimSpace(f.Value) != "" {
			n++
		}
	}
	return n
}

func (a *App) updateDimensions() {
	a.resultsView.Width = a.state.Width - 2
	a.resultsView.Height = a.state.Height - 4
	a.searchInput.Width = a.state.Width - 4

	panelWidth := a.state.Width * a.config.UI.PanelWidthRatio / 100
	if panelWidth < 50 {
		panelWidth = 50
	}
	a.filterPanel.Width = panelWidth
	a.filterPanel.Height = a.state.Height - 4
}

// View implements tea.Model
func (a *App) View() string {
	if a.state.Width == 0 {
		return "Loading..."
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height)
	}

	var sections []string
	if a.showSearch {
		sections = append(sections, a.searchInput.View())
	}
	if a.showFilters {
		sections = append(sections, a.filterPanel.View())
	} else {
		sections = append(sections, a.resultsView.View())
	}
	sections = append(sections, a.statusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusBar renders the bottom status line
func (a *App) statusBar() string {
	left := a.currentQuery
	if left == "" {
		left = "no active query"
	}
	count := activeCount(a.activeFilters)
	right := fmt.Sprintf("%d filter(s)", count)
	if a.excludeShorts {
		right += " │ shorts excluded"
	}

	if a.statusText != "" {
		color := a.theme.Metadata
		if a.statusError {
			color = a.theme.Error
		}
		left = lipgloss.NewStyle().Foreground(color).Render(a.statusText)
	}

	gap := a.state.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	barStyle := lipgloss.NewStyle().
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Width(a.state.Width).
		Padding(0, 1)

	return barStyle.Render(left + strings.Repeat(" ", gap) + right)
}

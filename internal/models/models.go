package models

import "time"

// AppState holds the top-level application state
type AppState struct {
	Width        int
	Height       int
	FocusedPanel PanelType
	ViewMode     ViewMode
}

// PanelType identifies which panel is focused
type PanelType int

const (
	FilterPanelFocus PanelType = iota
	ResultsPanelFocus
)

// ViewMode identifies the current view
type ViewMode int

const (
	NormalMode ViewMode = iota
	HelpMode
)

// NewAppState creates a new AppState with defaults
func NewAppState() AppState {
	return AppState{
		Width:        80,
		Height:       24,
		FocusedPanel: ResultsPanelFocus,
		ViewMode:     NormalMode,
	}
}

// SearchResult is one scraped result row. Scraping itself happens outside
// this program; results arrive ready-made and are only displayed/exported.
type SearchResult struct {
	Title     string    `json:"title"`
	Channel   string    `json:"channel"`
	URL       string    `json:"url"`
	Duration  string    `json:"duration"`
	Views     int64     `json:"views"`
	Published time.Time `json:"published"`
}

// Preset is a saved, reusable set of filters
type Preset struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description,omitempty"`
	Filters       []ActiveFilter `yaml:"filters"`
	Query         string         `yaml:"query"`
	ExcludeShorts bool           `yaml:"exclude_shorts"`
	CreatedAt     time.Time      `yaml:"created_at"`
	UpdatedAt     time.Time      `yaml:"updated_at"`
	LastUsed      time.Time      `yaml:"last_used,omitempty"`
	UsageCount    int            `yaml:"usage_count"`
}

package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tubesift/tubesift/internal/export"
	"github.com/tubesift/tubesift/internal/models"
	"github.com/tubesift/tubesift/internal/query"
	"gopkg.in/yaml.v3"
)

// Manager manages saved filter presets
type Manager struct {
	path    string
	presets []models.Preset
}

// NewManager creates a preset manager backed by presets.yaml in configDir
func NewManager(configDir string) (*Manager, error) {
	path := filepath.Join(configDir, "presets.yaml")

	m := &Manager{
		path:    path,
		presets: []models.Preset{},
	}

	if _, err := os.Stat(path); err == nil {
		if err := m.Load(); err != nil {
			return nil, fmt.Errorf("failed to load presets: %w", err)
		}
	}

	return m, nil
}

// Load loads presets from the YAML file
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read presets file: %w", err)
	}
	if err := yaml.Unmarshal(data, &m.presets); err != nil {
		return fmt.Errorf("failed to parse presets: %w", err)
	}
	return nil
}

// Save saves presets to the YAML file
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.presets)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write presets file: %w", err)
	}
	return nil
}

// hasActiveValue reports whether at least one filter carries a non-blank value
func hasActiveValue(filters []models.ActiveFilter) bool {
	for _, f := range filters {
		if strings.TrimSpace(f.Value) != "" {
			return true
		}
	}
	return false
}

// Add creates and persists a new preset. The query string is rendered from
// the filters at save time so exports stay self-contained.
func (m *Manager) Add(name, description string, filters []models.ActiveFilter, excludeShorts bool) (*models.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("preset name cannot be empty")
	}
	if !hasActiveValue(filters) && !excludeShorts {
		return nil, fmt.Errorf("preset needs at least one filter with a value")
	}

	for _, p := range m.presets {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("a preset named '%s' already exists (names are case-insensitive)", name)
		}
	}

	preset := models.Preset{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   strings.TrimSpace(description),
		Filters:       filters,
		Query:         query.BuildQueryString(filters),
		ExcludeShorts: excludeShorts,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		UsageCount:    0,
		LastUsed:      time.Time{},
	}

	m.presets = append(m.presets, preset)

	if err := m.Save(); err != nil {
		return nil, fmt.Errorf("failed to save preset: %w", err)
	}
	return &preset, nil
}

// Update updates an existing preset
func (m *Manager) Update(id, name, description string, filters []models.ActiveFilter, excludeShorts bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if !hasActiveValue(filters) && !excludeShorts {
		return fmt.Errorf("preset needs at least one filter with a value")
	}

	for _, p := range m.presets {
		if p.ID != id && strings.EqualFold(p.Name, name) {
			return fmt.Errorf("a preset named '%s' already exists (names are case-insensitive)", name)
		}
	}

	for i, p := range m.presets {
		if p.ID == id {
			m.presets[i].Name = name
			m.presets[i].Description = strings.TrimSpace(description)
			m.presets[i].Filters = filters
			m.presets[i].Query = query.BuildQueryString(filters)
			m.presets[i].ExcludeShorts = excludeShorts
			m.presets[i].UpdatedAt = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save preset: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("preset with ID '%s' was not found", id)
}

// Delete deletes a preset by ID
func (m *Manager) Delete(id string) error {
	for i, p := range m.presets {
		if p.ID == id {
			m.presets = append(m.presets[:i], m.presets[i+1:]...)
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save presets after deletion: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("preset with ID '%s' was not found", id)
}

// Get returns a preset by ID
func (m *Manager) Get(id string) (*models.Preset, error) {
	for _, p := range m.presets {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("preset with ID '%s' was not found", id)
}

// GetAll returns all presets
func (m *Manager) GetAll() []models.Preset {
	return m.presets
}

// Search searches presets by name or description
func (m *Manager) Search(text string) []models.Preset {
	if text == "" {
		return m.presets
	}

	text = strings.ToLower(text)
	var results []models.Preset
	for _, p := range m.presets {
		if strings.Contains(strings.ToLower(p.Name), text) ||
			strings.Contains(strings.ToLower(p.Description), text) ||
			strings.Contains(strings.ToLower(p.Query), text) {
			results = append(results, p)
		}
	}
	return results
}

// RecordUsage updates usage statistics for a preset
func (m *Manager) RecordUsage(id string) error {
	for i, p := range m.presets {
		if p.ID == id {
			m.presets[i].UsageCount++
			m.presets[i].LastUsed = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save usage statistics: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("preset with ID '%s' was not found", id)
}

// GetMostUsed returns the most frequently used presets
func (m *Manager) GetMostUsed(limit int) []models.Preset {
	sorted := make([]models.Preset, len(m.presets))
	copy(sorted, m.presets)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UsageCount > sorted[j].UsageCount
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// ExportToCSV exports all presets to a CSV file, defaulting to presets.csv
// next to the YAML file
func (m *Manager) ExportToCSV(customPath ...string) (string, error) {
	if len(m.presets) == 0 {
		return "", fmt.Errorf("no presets to export")
	}

	path := filepath.Join(filepath.Dir(m.path), "presets.csv")
	if len(customPath) > 0 && customPath[0] != "" {
		path = customPath[0]
	}

	if err := export.ExportPresetsToCSV(m.presets, path); err != nil {
		return "", fmt.Errorf("failed to export presets to CSV: %w", err)
	}
	return path, nil
}

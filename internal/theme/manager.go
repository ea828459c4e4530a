// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/overlay/internal/logger"
)

// Manager holds loaded themes and the active one.
type Manager struct {
	themes      map[string]*Theme // lowercased name -> theme
	activeTheme *Theme
	themesDir   string
}

// NewManager loads the built-in themes and any *.toml files in themesDir.
// An empty themesDir skips the directory scan.
func NewManager(themesDir string) *Manager {
	mgr := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: themesDir,
	}
	mgr.add(&Paper)
	mgr.add(&Blotter)
	mgr.activeTheme = &Paper

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}
	logger.Infof("Initial active theme set to: %s", mgr.activeTheme.Name)
	return mgr
}

// DefaultThemesDir returns <user config dir>/<app>/themes, or "".
func DefaultThemesDir(appDir, themesDir string) string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		logger.Warnf("Could not find user config dir: %v. Themes cannot be loaded from default location.", err)
		return ""
	}
	return filepath.Join(configDir, appDir, themesDir)
}

func (m *Manager) add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in the themes directory.
// A missing directory is not an error.
func (m *Manager) LoadThemesFromDir() error {
	files, err := os.ReadDir(m.themesDir)
	if os.IsNotExist(err) {
		logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(m.themesDir, file.Name())
		theme, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}
		m.add(theme)
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes.", loadedCount)
	return nil
}

// LoadFile loads one theme file and makes it active.
func (m *Manager) LoadFile(path string) error {
	theme, err := LoadThemeFromFile(path)
	if err != nil {
		return err
	}
	m.add(theme)
	m.activeTheme = theme
	logger.Infof("Active theme set to: %s", theme.Name)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// Next activates the theme after the current one in name order.
func (m *Manager) Next() *Theme {
	names := m.ListThemes()
	current := strings.ToLower(m.activeTheme.Name)
	for i, name := range names {
		if strings.ToLower(name) == current {
			_ = m.SetTheme(names[(i+1)%len(names)])
			break
		}
	}
	return m.activeTheme
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// GetTheme returns a specific theme by name (case-insensitive).
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	theme, ok := m.themes[strings.ToLower(name)]
	return theme, ok
}

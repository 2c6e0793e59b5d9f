package glint

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

const (
	prefsObject   = "prefs"
	prefsThemeKey = "theme"
)

// Preferences persists the user's theme choice. With a nil gdata manager it
// keeps the choice in memory only.
type Preferences struct {
	manager *gdata.Manager
	theme   string
}

// OpenPreferences opens the gdata store for appName. If the store cannot be
// opened it logs a warning and returns memory-only preferences.
func OpenPreferences(appName string) *Preferences {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[glint] Warning: preferences storage unavailable: %v (memory only)", err)
		m = nil
	}
	p := NewPreferences(m)
	if err := p.Load(); err != nil {
		log.Printf("[glint] Warning: failed to load preferences: %v", err)
	}
	return p
}

// NewPreferences wraps a gdata manager, which may be nil.
func NewPreferences(m *gdata.Manager) *Preferences {
	return &Preferences{manager: m}
}

// Persistent reports whether preferences are backed by storage.
func (p *Preferences) Persistent() bool {
	return p.manager != nil
}

// Load reads the saved theme. A missing key leaves the theme unset.
func (p *Preferences) Load() error {
	if p.manager == nil || !p.manager.ObjectPropExists(prefsObject, prefsThemeKey) {
		return nil
	}
	data, err := p.manager.LoadObjectProp(prefsObject, prefsThemeKey)
	if err != nil {
		return fmt.Errorf("load theme preference: %w", err)
	}
	name := string(data)
	if _, err := LookupTheme(name); err != nil {
		return fmt.Errorf("load theme preference: %w", err)
	}
	p.theme = name
	return nil
}

// Theme returns the saved theme name, or "" when none was saved.
func (p *Preferences) Theme() string {
	return p.theme
}

// SetTheme records and saves the theme name.
func (p *Preferences) SetTheme(name string) error {
	if _, err := LookupTheme(name); err != nil {
		return err
	}
	p.theme = name
	if p.manager == nil {
		return nil
	}
	if err := p.manager.SaveObjectProp(prefsObject, prefsThemeKey, []byte(name)); err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}

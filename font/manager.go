package font

import (
	"fmt"
	"sort"

	"github.com/go-theft-auto/imcore"
)

// Manager holds named atlases and implements imcore.FontProvider.
type Manager struct {
	atlases map[string]*Atlas
	active  *Atlas
	name    string
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{atlases: make(map[string]*Atlas)}
}

// NewDefaultManager returns a manager with the Go Regular font registered
// and active as "default".
func NewDefaultManager(sizePx float32) (*Manager, error) {
	a, err := Default(sizePx)
	if err != nil {
		return nil, err
	}
	m := NewManager()
	m.Add("default", a)
	return m, nil
}

// Add registers atlas under name. The first atlas added becomes active.
func (m *Manager) Add(name string, a *Atlas) {
	m.atlases[name] = a
	if m.active == nil {
		m.active = a
		m.name = name
	}
}

// Load builds an atlas from the font file at path and registers it.
func (m *Manager) Load(name, path string, opts Options) error {
	a, err := LoadFile(path, opts)
	if err != nil {
		return fmt.Errorf("load font %q: %w", name, err)
	}
	m.Add(name, a)
	return nil
}

// ActiveFont returns the active atlas, or nil.
func (m *Manager) ActiveFont() imcore.Font {
	if m.active == nil {
		return nil
	}
	return m.active
}

// ActiveName returns the name of the active atlas.
func (m *Manager) ActiveName() string { return m.name }

// SetActiveFont selects the atlas registered as name.
func (m *Manager) SetActiveFont(name string) error {
	a, ok := m.atlases[name]
	if !ok {
		return fmt.Errorf("font %q not loaded", name)
	}
	m.active = a
	m.name = name
	return nil
}

// Atlas returns the atlas registered as name, or nil.
func (m *Manager) Atlas(name string) *Atlas {
	return m.atlases[name]
}

// Names lists the registered atlases in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.atlases))
	for n := range m.atlases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

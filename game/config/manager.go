package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/wricardo/jungle-game/game/engine"
	"github.com/wricardo/jungle-game/game/service"
)

var (
	ErrSetupNotFound = errors.New("setup not found")
	ErrInvalidSetup  = errors.New("invalid setup")
)

// builtinSetup is served when the directory has no file of that name
const builtinSetup = "classic"

// Manager handles starting setup loading and caching
type Manager struct {
	setupsDir    string
	defaultName  string
	firstSide    string
	defaultSetup *engine.Setup
	setups       map[string]*engine.Setup
	mu           sync.RWMutex
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithDefaultSetup picks the setup GetDefault returns
func WithDefaultSetup(name string) ManagerOption {
	return func(m *Manager) {
		m.defaultName = name
	}
}

// WithFirstSide sets who moves first in the built-in classic setup
func WithFirstSide(side string) ManagerOption {
	return func(m *Manager) {
		m.firstSide = side
	}
}

// NewManager creates a setup manager reading JSON files from setupsDir
func NewManager(setupsDir string, opts ...ManagerOption) (*Manager, error) {
	if _, err := os.Stat(setupsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("setups directory does not exist: %s", setupsDir)
	}

	m := &Manager{
		setupsDir:   setupsDir,
		defaultName: builtinSetup,
		setups:      make(map[string]*engine.Setup),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.firstSide != "" {
		if _, err := engine.ParseSide(m.firstSide); err != nil {
			return nil, fmt.Errorf("%w: first side: %v", ErrInvalidSetup, err)
		}
	}

	if err := m.loadDefaultSetup(); err != nil {
		return nil, fmt.Errorf("failed to load default setup: %w", err)
	}
	return m, nil
}

// LoadSetup loads a setup by name
func (m *Manager) LoadSetup(name string) (*engine.Setup, error) {
	name = strings.TrimSuffix(name, ".json")

	m.mu.RLock()
	if setup, exists := m.setups[name]; exists {
		m.mu.RUnlock()
		return setup, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(name)
}

// loadLocked reads name from disk into the cache; m.mu must be held
func (m *Manager) loadLocked(name string) (*engine.Setup, error) {
	if setup, exists := m.setups[name]; exists {
		return setup, nil
	}

	data, err := os.ReadFile(m.setupPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			if name == builtinSetup {
				setup := m.classic()
				m.setups[name] = setup
				return setup, nil
			}
			return nil, fmt.Errorf("%w: %s", ErrSetupNotFound, name)
		}
		return nil, fmt.Errorf("failed to read setup file: %w", err)
	}

	var setup engine.Setup
	if err := json.Unmarshal(data, &setup); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSetup, name, err)
	}
	if err := engine.ValidateSetup(&setup); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSetup, name, err)
	}

	m.setups[name] = &setup
	return &setup, nil
}

// ListSetups returns information about every loadable setup, sorted by ID
func (m *Manager) ListSetups() ([]*service.SetupInfo, error) {
	entries, err := os.ReadDir(m.setupsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read setups directory: %w", err)
	}

	var ids []string
	haveBuiltin := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		if id == builtinSetup {
			haveBuiltin = true
		}
		ids = append(ids, id)
	}
	if !haveBuiltin {
		ids = append([]string{builtinSetup}, ids...)
	}

	var infos []*service.SetupInfo
	for _, id := range ids {
		setup, err := m.LoadSetup(id)
		if err != nil {
			// skip invalid setups
			continue
		}
		info := &service.SetupInfo{
			Filename:    id + ".json",
			SetupID:     id,
			Name:        setup.Name,
			Description: setup.Description,
			Position:    setup.Position,
		}
		if b, err := setup.Board(); err == nil {
			info.RedPieces = b.CountPieces(engine.Red)
			info.BlackPieces = b.CountPieces(engine.Black)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// GetDefault returns the default setup
func (m *Manager) GetDefault() *engine.Setup {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultSetup
}

// SetDefault sets the default setup by name
func (m *Manager) SetDefault(name string) error {
	setup, err := m.LoadSetup(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultSetup = setup
	m.defaultName = name
	return nil
}

// RefreshCache drops every cached setup and reloads the default from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.setups = make(map[string]*engine.Setup)
	m.mu.Unlock()

	return m.loadDefaultSetup()
}

// SaveSetup validates setup and writes it to name.json
func (m *Manager) SaveSetup(name string, setup *engine.Setup) error {
	if err := engine.ValidateSetup(setup); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	name = strings.TrimSuffix(name, ".json")

	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal setup: %w", err)
	}
	if err := os.WriteFile(m.setupPath(name), data, 0644); err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}

	m.mu.Lock()
	m.setups[name] = setup
	m.mu.Unlock()
	return nil
}

// loadDefaultSetup resolves the default: the configured name, then the first
// valid file, then the built-in classic opening
func (m *Manager) loadDefaultSetup() error {
	setup, err := m.LoadSetup(m.defaultName)
	if err != nil {
		if !errors.Is(err, ErrSetupNotFound) {
			return err
		}
		infos, listErr := m.ListSetups()
		if listErr != nil || len(infos) == 0 {
			setup = m.classic()
		} else {
			setup, err = m.LoadSetup(infos[0].SetupID)
			if err != nil {
				setup = m.classic()
			}
		}
	}

	m.mu.Lock()
	m.defaultSetup = setup
	m.mu.Unlock()
	return nil
}

func (m *Manager) classic() *engine.Setup {
	setup := engine.ClassicSetup()
	setup.First = m.firstSide
	return setup
}

func (m *Manager) setupPath(name string) string {
	return filepath.Join(m.setupsDir, name+".json")
}

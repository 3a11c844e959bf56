package stores

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/storage"
)

// ThemeStore owns the dark/light flag, persisted as the two-valued enum
// string "dark"/"light". Dark is the default: only a stored literal
// "light" switches it off.
type ThemeStore struct {
	mu       sync.Mutex
	darkMode bool
	bridge   storage.Bridge
	log      zerolog.Logger
}

func NewThemeStore(bridge storage.Bridge, log zerolog.Logger) *ThemeStore {
	raw, ok, _ := bridge.Load(context.Background(), storage.KeyTheme)
	return &ThemeStore{
		darkMode: !(ok && string(raw) == models.ThemeLight),
		bridge:   bridge,
		log:      log.With().Str("store", "theme").Logger(),
	}
}

// Toggle flips the flag, persists it and reapplies the derived variables
func (s *ThemeStore) Toggle() {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	mode := s.modeLocked()
	s.mu.Unlock()

	if err := s.bridge.Save(context.Background(), storage.KeyTheme, []byte(mode)); err != nil {
		s.log.Error().Err(err).Msg("failed to persist theme")
	}
	s.apply()
}

// Init applies the current state without toggling. Meant to run once at
// startup so the visual state matches the persisted preference.
func (s *ThemeStore) Init() {
	s.apply()
}

func (s *ThemeStore) apply() {
	s.log.Debug().Str("mode", s.Mode()).Msg("theme applied")
}

func (s *ThemeStore) IsDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// Mode is the persisted enum value for the current state
func (s *ThemeStore) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modeLocked()
}

func (s *ThemeStore) modeLocked() string {
	if s.darkMode {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// Variables are the style variables derived from the current mode
func (s *ThemeStore) Variables() map[string]string {
	if s.IsDarkMode() {
		return map[string]string{
			"--text-primary": "#f5f5f5",
			"--primary-dark": "#0a0a0a",
		}
	}
	return map[string]string{
		"--text-primary": "#1a1a1a",
		"--primary-dark": "#ffffff",
	}
}

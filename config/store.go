package config

import (
	"sync/atomic"

	"github.com/COMOCO0102/Game-plan/engine"
)

// Store holds the active configuration; reload swaps it atomically
type Store struct {
	cur atomic.Pointer[Config]
}

// NewStore creates a store holding cfg
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.Set(cfg)
	return s
}

// Get returns a copy of the active configuration
func (s *Store) Get() Config {
	return *s.cur.Load()
}

// Set replaces the active configuration
func (s *Store) Set(cfg Config) {
	s.cur.Store(&cfg)
}

// Settings is an engine.SettingsProvider reading the active configuration
func (s *Store) Settings() engine.Settings {
	return s.Get().Settings()
}

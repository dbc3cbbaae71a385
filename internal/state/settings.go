package state

import (
	"sync"

	"finboard/internal/core"
	"finboard/internal/kv"
)

// DefaultUserSettings is the configuration a fresh profile starts with.
func DefaultUserSettings() core.UserSettings {
	return core.UserSettings{
		TotalBudgetLimit: core.Money{Cents: 100000},
		CategoryLimits:   map[string]core.Money{},
		AlertsEnabled:    true,
	}
}

// Settings owns the budget configuration. Set is a full replace with no
// validation; the save-time limit rule lives in
// core.UserSettings.ValidateLimits and is applied by the caller
// confirming a save action. The persisted BudgetExceeded field is a
// legacy cache: read paths recompute it via metrics.BudgetExceeded
// instead of trusting it.
type Settings struct {
	mu      sync.Mutex
	store   kv.Store
	current core.UserSettings
	bc      broadcaster
}

func NewSettings(store kv.Store) *Settings {
	s := &Settings{store: store, current: DefaultUserSettings()}
	loadJSON(store, kv.KeyUserSettings, &s.current)
	if s.current.CategoryLimits == nil {
		s.current.CategoryLimits = map[string]core.Money{}
	}
	return s
}

// Get returns a snapshot of the current settings.
func (s *Settings) Get() core.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSettings(s.current)
}

// Set replaces the settings, persists them, and notifies subscribers.
func (s *Settings) Set(settings core.UserSettings) {
	s.mu.Lock()
	s.current = cloneSettings(settings)
	if s.current.CategoryLimits == nil {
		s.current.CategoryLimits = map[string]core.Money{}
	}
	saveJSON(s.store, kv.KeyUserSettings, s.current)
	s.mu.Unlock()
	s.bc.notify()
}

func (s *Settings) Subscribe(fn func()) func() {
	return s.bc.subscribe(fn)
}

func cloneSettings(in core.UserSettings) core.UserSettings {
	out := in
	out.CategoryLimits = make(map[string]core.Money, len(in.CategoryLimits))
	for k, v := range in.CategoryLimits {
		out.CategoryLimits[k] = v
	}
	return out
}

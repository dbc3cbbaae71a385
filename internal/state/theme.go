package state

import (
	"errors"
	"log/slog"
	"sync"

	"finboard/internal/kv"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrInvalidTheme = errors.New("theme must be \"light\" or \"dark\"")

// Theme owns the persisted display-theme preference.
type Theme struct {
	mu      sync.Mutex
	store   kv.Store
	current string
	bc      broadcaster
}

func NewTheme(store kv.Store) *Theme {
	t := &Theme{store: store, current: ThemeLight}
	if v, ok, err := store.Get(kv.KeyTheme); err == nil && ok {
		if v == ThemeLight || v == ThemeDark {
			t.current = v
		}
	}
	return t
}

func (t *Theme) Get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *Theme) Set(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	t.mu.Lock()
	t.current = theme
	if err := t.store.Set(kv.KeyTheme, theme); err != nil {
		// Keep the in-memory preference; persistence is best effort.
		slog.Error("Failed to persist theme", "component", "state", "error", err)
	}
	t.mu.Unlock()
	t.bc.notify()
	return nil
}

func (t *Theme) Subscribe(fn func()) func() {
	return t.bc.subscribe(fn)
}

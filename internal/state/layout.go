package state

import (
	"sync"

	"finboard/internal/kv"
)

// Widget is one dashboard widget placement inside a breakpoint.
type Widget struct {
	ID     string `json:"i"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	MinW   int    `json:"minW,omitempty"`
	MaxW   int    `json:"maxW,omitempty"`
	Moved  bool   `json:"moved"`
	Static bool   `json:"static"`
}

// Layout maps a responsive breakpoint name to its ordered widget
// placements.
type Layout map[string][]Widget

// DefaultLayout is the built-in arrangement used when a user has no
// saved layout.
func DefaultLayout() Layout {
	return Layout{
		"lg": {
			{ID: "income", X: 0, Y: 0, W: 4, H: 3, MinW: 3, MaxW: 4},
			{ID: "expenses", X: 4, Y: 0, W: 4, H: 3, MinW: 3, MaxW: 4},
			{ID: "balance", X: 8, Y: 0, W: 4, H: 3, MinW: 3, MaxW: 4},
			{ID: "analysisGraph", X: 0, Y: 3, W: 6, H: 9, MinW: 4},
			{ID: "balanceOverTime", X: 6, Y: 3, W: 6, H: 9, MinW: 4},
			{ID: "statistics", X: 0, Y: 12, W: 6, H: 10, MinW: 4},
			{ID: "recommendations", X: 6, Y: 12, W: 6, H: 10, MinW: 4},
			{ID: "recentTransactions", X: 0, Y: 22, W: 12, H: 9, MinW: 6},
		},
	}
}

// Layouts owns the per-user widget arrangements. The persisted shape is
// a map keyed by user identifier (email), so several profiles can share
// one installation. The store also tracks the layout live for the
// current session.
type Layouts struct {
	mu      sync.Mutex
	store   kv.Store
	current Layout
	bc      broadcaster
}

func NewLayouts(store kv.Store) *Layouts {
	return &Layouts{store: store}
}

// Load resolves the layout for a user: the saved one when present, the
// built-in default otherwise (including when the persisted blob is
// unreadable). The resolved layout becomes the live session layout.
func (l *Layouts) Load(userID string) Layout {
	all := make(map[string]Layout)
	loadJSON(l.store, kv.KeyDashboardLayouts, &all)

	layout, ok := all[userID]
	if !ok {
		layout = DefaultLayout()
	}
	layout = cloneLayout(layout)

	l.mu.Lock()
	l.current = layout
	l.mu.Unlock()
	l.bc.notify()
	return cloneLayout(layout)
}

// Save stores the layout for a user and makes it the live session
// layout.
func (l *Layouts) Save(userID string, layout Layout) {
	layout = cloneLayout(layout)

	l.mu.Lock()
	all := make(map[string]Layout)
	loadJSON(l.store, kv.KeyDashboardLayouts, &all)
	all[userID] = layout
	saveJSON(l.store, kv.KeyDashboardLayouts, all)
	l.current = layout
	l.mu.Unlock()
	l.bc.notify()
}

// Reset puts the user back on the built-in default.
func (l *Layouts) Reset(userID string) {
	l.Save(userID, DefaultLayout())
}

// ClearAll drops every saved layout and the live session layout.
func (l *Layouts) ClearAll() {
	l.mu.Lock()
	if err := l.store.Remove(kv.KeyDashboardLayouts); err != nil {
		// Degrade: the live reset below still applies.
		saveJSON(l.store, kv.KeyDashboardLayouts, map[string]Layout{})
	}
	l.current = nil
	l.mu.Unlock()
	l.bc.notify()
}

// Current returns the live session layout, nil when none is loaded.
func (l *Layouts) Current() Layout {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return nil
	}
	return cloneLayout(l.current)
}

func (l *Layouts) Subscribe(fn func()) func() {
	return l.bc.subscribe(fn)
}

func cloneLayout(in Layout) Layout {
	out := make(Layout, len(in))
	for breakpoint, widgets := range in {
		out[breakpoint] = append([]Widget(nil), widgets...)
	}
	return out
}

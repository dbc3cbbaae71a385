package state

import (
	"sync"

	"finboard/internal/metrics"
)

// BudgetAlertState is the latest computed budget-violation list. It is
// a derived cache: callers run the violation detector and push the
// result in; the store never recomputes anything itself.
type BudgetAlertState struct {
	Visible           bool            `json:"isVisible"`
	Alerts            []metrics.Alert `json:"alerts"`
	NotificationCount int             `json:"notificationCount"`
}

// BudgetAlerts owns the pushed violation cache. In-memory only.
type BudgetAlerts struct {
	mu    sync.Mutex
	state BudgetAlertState
	bc    broadcaster
}

func NewBudgetAlerts() *BudgetAlerts {
	return &BudgetAlerts{}
}

// Update replaces the alert list, marks it visible, and bumps the
// notification count.
func (b *BudgetAlerts) Update(alerts []metrics.Alert) {
	b.mu.Lock()
	b.state = BudgetAlertState{
		Visible:           true,
		Alerts:            append([]metrics.Alert(nil), alerts...),
		NotificationCount: b.state.NotificationCount + 1,
	}
	b.mu.Unlock()
	b.bc.notify()
}

// Reset clears the cache back to its empty, hidden state.
func (b *BudgetAlerts) Reset() {
	b.mu.Lock()
	b.state = BudgetAlertState{}
	b.mu.Unlock()
	b.bc.notify()
}

// State returns the current snapshot.
func (b *BudgetAlerts) State() BudgetAlertState {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.state
	out.Alerts = append([]metrics.Alert(nil), b.state.Alerts...)
	return out
}

func (b *BudgetAlerts) Subscribe(fn func()) func() {
	return b.bc.subscribe(fn)
}

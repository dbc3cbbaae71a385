package state

import (
	"sync"

	"finboard/internal/core"
	"finboard/internal/kv"
)

// Transactions is the sole source of truth for money-movement records.
// The mutation surface is deliberately a full overwrite: callers
// compute the new complete list (append for add, map-replace for edit,
// filter-out for delete) and hand it over. The store performs no
// validation; callers validate before calling. Last write wins.
type Transactions struct {
	mu    sync.Mutex
	store kv.Store
	items []core.Transaction
	bc    broadcaster
}

func NewTransactions(store kv.Store) *Transactions {
	s := &Transactions{store: store}
	loadJSON(store, kv.KeyTransactions, &s.items)
	return s
}

// All returns a snapshot copy of the current list.
func (s *Transactions) All() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...)
}

// ReplaceAll overwrites the list, persists it, and notifies
// subscribers.
func (s *Transactions) ReplaceAll(list []core.Transaction) {
	s.mu.Lock()
	s.items = append([]core.Transaction(nil), list...)
	saveJSON(s.store, kv.KeyTransactions, s.items)
	s.mu.Unlock()
	s.bc.notify()
}

// Subscribe registers a callback for every mutation; the returned func
// cancels it.
func (s *Transactions) Subscribe(fn func()) func() {
	return s.bc.subscribe(fn)
}

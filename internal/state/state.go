// Package state holds the finance-state containers. Each store is an
// explicit, dependency-injected object created once at startup: it
// bootstraps from the key-value store, exposes read/subscribe/write,
// and persists on every mutating call. Persistence failures are logged
// and degrade to in-memory state; they never propagate.
package state

import (
	"encoding/json"
	"log/slog"
	"sync"

	"finboard/internal/kv"
)

// broadcaster fans a change signal out to subscribers. Stores call
// notify after every mutation, outside their own lock.
type broadcaster struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

func (b *broadcaster) subscribe(fn func()) func() {
	b.mu.Lock()
	if b.subs == nil {
		b.subs = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *broadcaster) notify() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// loadJSON reads and decodes a persisted value. A missing key or broken
// blob leaves v untouched and reports false.
func loadJSON(store kv.Store, key string, v any) bool {
	raw, ok, err := store.Get(key)
	if err != nil {
		slog.Warn("Failed to read persisted state", "component", "state", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("Discarding malformed persisted state", "component", "state", "key", key, "error", err)
		return false
	}
	return true
}

// saveJSON encodes and persists a value, logging instead of failing.
func saveJSON(store kv.Store, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode state", "component", "state", "key", key, "error", err)
		return
	}
	if err := store.Set(key, string(raw)); err != nil {
		slog.Error("Failed to persist state", "component", "state", "key", key, "error", err)
	}
}

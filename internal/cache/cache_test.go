package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestLRUCacheEviction(t *testing.T) {
	c := NewLRUCache[int](3, time.Minute)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}

	// Touch k0 so k1 becomes the eviction candidate.
	if _, ok := c.Get("k0"); !ok {
		t.Fatal("k0 should be present")
	}

	c.Set("k3", 3)

	if _, ok := c.Get("k1"); ok {
		t.Error("k1 should have been evicted")
	}
	if _, ok := c.Get("k0"); !ok {
		t.Error("k0 should have survived")
	}
	if c.Size() != 3 {
		t.Errorf("size = %d, want 3", c.Size())
	}
}

func TestLRUCacheTTL(t *testing.T) {
	c := NewLRUCache[string](10, 10*time.Millisecond)
	c.Set("k", "v")

	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry should be readable")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry should miss")
	}
	if c.Size() != 0 {
		t.Errorf("size = %d after expired read, want 0", c.Size())
	}
}

func TestCleanExpired(t *testing.T) {
	c := NewLRUCache[string](10, 10*time.Millisecond)
	c.Set("a", "1")
	c.Set("b", "2")

	time.Sleep(20 * time.Millisecond)
	c.Set("c", "3")

	if n := c.CleanExpired(); n != 2 {
		t.Errorf("cleaned %d entries, want 2", n)
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("fresh entry should survive cleanup")
	}
}

func TestManagerStop(t *testing.T) {
	m := NewManager()
	c := NewLRUCache[string](10, time.Millisecond)
	m.Register(c)
	c.Set("k", "v")

	m.StartCleanup(5 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	m.Stop()

	if c.Size() != 0 {
		t.Errorf("size = %d after cleanup cycles, want 0", c.Size())
	}
}

package kv

import (
	"path/filepath"
	"testing"
)

func testStoreContract(t *testing.T, store Store) {
	t.Helper()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := store.Set("theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := store.Get("theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("get after set: v=%q ok=%v err=%v", v, ok, err)
	}

	// Overwrite
	if err := store.Set("theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = store.Get("theme")
	if v != "light" {
		t.Fatalf("after overwrite: %q", v)
	}

	if err := store.Remove("theme"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get("theme"); ok {
		t.Fatal("key still present after remove")
	}
	// Removing an absent key is a no-op
	if err := store.Remove("theme"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemory())
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finboard.db")

	store, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	testStoreContract(t, store)

	// Values survive a reopen
	if err := store.Set("user", `{"email":"a@b.com"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get("user")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if v != `{"email":"a@b.com"}` {
		t.Fatalf("value after reopen: %q", v)
	}
}

package state

import (
	"errors"
	"testing"

	"finboard/internal/core"
	"finboard/internal/kv"
)

func TestRegisterLoginLogout(t *testing.T) {
	store := kv.NewMemory()
	auth := NewAuth(store)

	if auth.Session().IsAuthenticated {
		t.Fatal("fresh store must start logged out")
	}

	if err := auth.Register("a@b.com", "secret12"); err != nil {
		t.Fatalf("register: %v", err)
	}
	s := auth.Session()
	if !s.IsAuthenticated || s.User == nil || s.User.Email != "a@b.com" {
		t.Fatalf("session after register = %+v", s)
	}

	auth.Logout()
	if auth.Session().IsAuthenticated {
		t.Fatal("still authenticated after logout")
	}

	if err := auth.Login("a@b.com", "wrong-pass1"); !errors.Is(err, core.ErrInvalidLogin) {
		t.Fatalf("wrong password: %v", err)
	}
	if err := auth.Login("a@b.com", "secret12"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !auth.Session().IsAuthenticated {
		t.Fatal("not authenticated after login")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := NewAuth(kv.NewMemory())

	if err := auth.Register("a@b.com", "secret12"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := auth.Register("a@b.com", "other-pass1"); !errors.Is(err, core.ErrEmailRegistered) {
		t.Fatalf("duplicate register: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := NewAuth(kv.NewMemory())

	if err := auth.Register("nope", "secret12"); !errors.Is(err, core.ErrInvalidEmail) {
		t.Fatalf("bad email: %v", err)
	}
	if err := auth.Register("a@b.com", "short1"); !errors.Is(err, core.ErrWeakPassword) {
		t.Fatalf("weak password: %v", err)
	}
	if auth.Session().IsAuthenticated {
		t.Fatal("failed register must not establish a session")
	}
}

func TestSessionBootstrapsFromPersistedState(t *testing.T) {
	store := kv.NewMemory()
	auth := NewAuth(store)
	if err := auth.Register("a@b.com", "secret12"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// A second Auth over the same backing sees the session.
	rebooted := NewAuth(store)
	s := rebooted.Session()
	if !s.IsAuthenticated || s.User == nil || s.User.Email != "a@b.com" {
		t.Fatalf("bootstrapped session = %+v", s)
	}
}

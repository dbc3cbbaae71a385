package state

import (
	"log/slog"
	"sync"

	"finboard/internal/core"
	"finboard/internal/kv"
)

// Session is the current authentication state.
type Session struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	User            *core.User `json:"user"`
}

// Auth owns the session singleton and the registered credential list.
// The session is bootstrapped from persisted state at startup, set by
// login/register, and cleared by logout.
type Auth struct {
	mu      sync.Mutex
	store   kv.Store
	session Session
	bc      broadcaster
}

func NewAuth(store kv.Store) *Auth {
	a := &Auth{store: store}

	if flag, ok, err := store.Get(kv.KeyIsAuthenticated); err == nil && ok && flag == "true" {
		a.session.IsAuthenticated = true
	} else if err != nil {
		slog.Warn("Failed to read auth flag", "component", "state", "error", err)
	}

	var user core.User
	if loadJSON(store, kv.KeyUser, &user) && user.Email != "" {
		a.session.User = &user
	} else {
		// A user record without a valid flag (or vice versa) is a
		// half-written session; treat it as logged out.
		a.session.IsAuthenticated = false
	}

	return a
}

// Session returns the current session snapshot.
func (a *Auth) Session() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.session
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Register validates the credentials, rejects duplicate emails with a
// descriptive error, appends the record to the persisted user list, and
// logs the new user in.
func (a *Auth) Register(email, password string) error {
	creds := core.Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	users := a.loadUsersLocked()
	for _, u := range users {
		if u.Email == email {
			a.mu.Unlock()
			return core.ErrEmailRegistered
		}
	}
	users = append(users, creds)
	saveJSON(a.store, kv.KeyUsers, users)
	a.loginLocked(email)
	a.mu.Unlock()

	a.bc.notify()
	return nil
}

// Login verifies the credentials against the registered user list and
// establishes the session.
func (a *Auth) Login(email, password string) error {
	a.mu.Lock()
	for _, u := range a.loadUsersLocked() {
		if u.Email == email && u.Password == password {
			a.loginLocked(email)
			a.mu.Unlock()
			a.bc.notify()
			return nil
		}
	}
	a.mu.Unlock()
	return core.ErrInvalidLogin
}

// Logout clears the session and its persisted keys.
func (a *Auth) Logout() {
	a.mu.Lock()
	a.session = Session{}
	if err := a.store.Set(kv.KeyIsAuthenticated, "false"); err != nil {
		slog.Error("Failed to persist auth flag", "component", "state", "error", err)
	}
	if err := a.store.Remove(kv.KeyUser); err != nil {
		slog.Error("Failed to remove persisted user", "component", "state", "error", err)
	}
	a.mu.Unlock()
	a.bc.notify()
}

func (a *Auth) Subscribe(fn func()) func() {
	return a.bc.subscribe(fn)
}

func (a *Auth) loginLocked(email string) {
	a.session = Session{IsAuthenticated: true, User: &core.User{Email: email}}
	if err := a.store.Set(kv.KeyIsAuthenticated, "true"); err != nil {
		slog.Error("Failed to persist auth flag", "component", "state", "error", err)
	}
	saveJSON(a.store, kv.KeyUser, a.session.User)
}

func (a *Auth) loadUsersLocked() []core.Credentials {
	var users []core.Credentials
	loadJSON(a.store, kv.KeyUsers, &users)
	return users
}

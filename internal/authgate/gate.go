// Package authgate decides whether the application shell or the auth screen
// is shown. It owns a single flag derived from the session store's
// notifications plus the local guest bypass, and nothing else may set it.
package authgate

import (
	"context"
	"log"
	"sync"

	"career-navigator/internal/domain/session"
	"career-navigator/internal/sessionstore"
)

type Phase int

const (
	// PhaseChecking is the initial state: the one-time session lookup has not
	// returned yet and no view may read auth state.
	PhaseChecking Phase = iota
	PhaseUnauthenticated
	// PhaseAuthenticated carries a real store session.
	PhaseAuthenticated
	// PhaseGuest is the demo-mode bypass: authenticated for view switching,
	// but with no backing session and no user identity.
	PhaseGuest
)

func (p Phase) String() string {
	switch p {
	case PhaseChecking:
		return "checking"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseGuest:
		return "guest"
	default:
		return "unknown"
	}
}

// State is a tagged value: Session is non-nil exactly in PhaseAuthenticated.
// Downstream logic that needs a real user id checks Session, not Authenticated,
// so guest mode fails predictably instead of operating on an absent identity.
type State struct {
	Phase   Phase
	Session *session.Session
}

// Authenticated reports whether the application shell renders.
func (s State) Authenticated() bool {
	return s.Phase == PhaseAuthenticated || s.Phase == PhaseGuest
}

// SessionStore is the slice of the store client the gate observes.
type SessionStore interface {
	GetSession(ctx context.Context) (*session.Session, error)
	OnAuthStateChange(fn func(session.Event)) *sessionstore.Subscription
	SignOut(ctx context.Context) error
}

type Gate struct {
	store  SessionStore
	logger *log.Logger

	mu        sync.RWMutex
	state     State
	observers []func(State)

	sub       *sessionstore.Subscription
	closeOnce sync.Once
}

func New(store SessionStore, logger *log.Logger) *Gate {
	return &Gate{
		store:  store,
		logger: logger,
		state:  State{Phase: PhaseChecking},
	}
}

// Mount performs the one-time session check and then subscribes to the
// store's notifications for the gate's remaining life. Call Close to release
// the subscription.
func (g *Gate) Mount(ctx context.Context) error {
	s, err := g.store.GetSession(ctx)
	if err != nil || s == nil {
		g.setState(State{Phase: PhaseUnauthenticated})
	} else {
		g.setState(State{Phase: PhaseAuthenticated, Session: s})
	}

	g.sub = g.store.OnAuthStateChange(g.handleEvent)
	return nil
}

// Close releases the notification subscription exactly once.
func (g *Gate) Close() {
	g.closeOnce.Do(func() {
		if g.sub != nil {
			g.sub.Unsubscribe()
		}
	})
}

func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// OnChange registers a view-switching observer. Observers fire only on actual
// transitions, so a login flips unauthenticated to authenticated exactly once
// with no flicker in between.
func (g *Gate) OnChange(fn func(State)) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	g.observers = append(g.observers, fn)
	g.mu.Unlock()
}

// ContinueAsGuest forces the authenticated view without any store call. The
// flag is local only; no session exists.
func (g *Gate) ContinueAsGuest() {
	g.setState(State{Phase: PhaseGuest})
}

// SignOut leaves the authenticated view. For a real session the transition
// arrives through the store's SIGNED_OUT notification; guest mode is torn
// down locally since the store never knew about it.
func (g *Gate) SignOut(ctx context.Context) error {
	if g.State().Phase == PhaseGuest {
		g.setState(State{Phase: PhaseUnauthenticated})
		return nil
	}
	return g.store.SignOut(ctx)
}

func (g *Gate) handleEvent(evt session.Event) {
	if evt.Session != nil {
		g.setState(State{Phase: PhaseAuthenticated, Session: evt.Session})
		return
	}

	// A guest never had a store session, so store-side absence notifications
	// (another tab's sign-out, token expiry) cannot demote it.
	if g.State().Phase == PhaseGuest && evt.Type != session.SignedOut {
		return
	}
	g.setState(State{Phase: PhaseUnauthenticated})
}

func (g *Gate) setState(next State) {
	g.mu.Lock()
	prev := g.state
	if sameState(prev, next) {
		g.mu.Unlock()
		return
	}
	g.state = next
	obs := make([]func(State), len(g.observers))
	copy(obs, g.observers)
	g.mu.Unlock()

	if g.logger != nil {
		g.logger.Printf("[AuthGate] transition | from=%s to=%s", prev.Phase, next.Phase)
	}
	for _, fn := range obs {
		fn(next)
	}
}

func sameState(a, b State) bool {
	if a.Phase != b.Phase {
		return false
	}
	if a.Session == nil || b.Session == nil {
		return a.Session == b.Session
	}
	return a.Session.UserID == b.Session.UserID && a.Session.AccessToken == b.Session.AccessToken
}

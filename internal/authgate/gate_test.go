package authgate

import (
	"context"
	"testing"

	"career-navigator/internal/domain/session"
	"career-navigator/internal/sessionstore"
)

type fakeStore struct {
	hub  *sessionstore.Hub
	sess *session.Session

	getCalls     int
	signOutCalls int
}

func newFakeStore(sess *session.Session) *fakeStore {
	return &fakeStore{hub: sessionstore.NewHub(), sess: sess}
}

func (f *fakeStore) GetSession(context.Context) (*session.Session, error) {
	f.getCalls++
	return f.sess, nil
}

func (f *fakeStore) OnAuthStateChange(fn func(session.Event)) *sessionstore.Subscription {
	return f.hub.Subscribe(fn)
}

func (f *fakeStore) SignOut(context.Context) error {
	f.signOutCalls++
	f.sess = nil
	f.hub.Notify(session.Event{Type: session.SignedOut})
	return nil
}

func (f *fakeStore) signIn(s *session.Session) {
	f.sess = s
	f.hub.Notify(session.Event{Type: session.SignedIn, Session: s})
}

func TestGate_InitialStateIsChecking(t *testing.T) {
	g := New(newFakeStore(nil), nil)
	if got := g.State().Phase; got != PhaseChecking {
		t.Fatalf("expected checking before mount, got %s", got)
	}
}

func TestGate_MountWithoutSession(t *testing.T) {
	store := newFakeStore(nil)
	g := New(store, nil)

	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if got := g.State().Phase; got != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", got)
	}
	if store.getCalls != 1 {
		t.Fatalf("expected exactly one session check, got %d", store.getCalls)
	}
}

func TestGate_MountWithExistingSession(t *testing.T) {
	store := newFakeStore(&session.Session{UserID: "u-1", Email: "alice@example.com"})
	g := New(store, nil)

	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	st := g.State()
	if st.Phase != PhaseAuthenticated {
		t.Fatalf("expected authenticated, got %s", st.Phase)
	}
	if st.Session == nil || st.Session.UserID != "u-1" {
		t.Fatalf("expected session u-1, got %+v", st.Session)
	}
}

func TestGate_LoginTransitionsExactlyOnce(t *testing.T) {
	store := newFakeStore(nil)
	g := New(store, nil)

	var transitions []Phase
	g.OnChange(func(st State) {
		transitions = append(transitions, st.Phase)
	})

	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	s := &session.Session{UserID: "u-1", AccessToken: "tok"}
	store.signIn(s)
	// A duplicate notification for the same session must not re-fire.
	store.hub.Notify(session.Event{Type: session.SignedIn, Session: s})

	want := []Phase{PhaseUnauthenticated, PhaseAuthenticated}
	if len(transitions) != len(want) {
		t.Fatalf("expected %d transitions, got %v", len(want), transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transition %d: expected %s, got %s", i, want[i], transitions[i])
		}
	}
}

func TestGate_ContinueAsGuestMakesNoStoreCall(t *testing.T) {
	store := newFakeStore(nil)
	g := New(store, nil)
	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}
	store.getCalls = 0

	g.ContinueAsGuest()

	st := g.State()
	if st.Phase != PhaseGuest {
		t.Fatalf("expected guest, got %s", st.Phase)
	}
	if !st.Authenticated() {
		t.Fatalf("guest must render the authenticated view")
	}
	if st.Session != nil {
		t.Fatalf("guest must carry no session, got %+v", st.Session)
	}
	if store.getCalls != 0 || store.signOutCalls != 0 {
		t.Fatalf("guest continue must not touch the store")
	}
}

func TestGate_GuestSignOutIsLocal(t *testing.T) {
	store := newFakeStore(nil)
	g := New(store, nil)
	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	g.ContinueAsGuest()
	if err := g.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	if got := g.State().Phase; got != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", got)
	}
	if store.signOutCalls != 0 {
		t.Fatalf("guest sign-out must not call the store")
	}
}

func TestGate_SignOutArrivesViaNotification(t *testing.T) {
	store := newFakeStore(&session.Session{UserID: "u-1"})
	g := New(store, nil)
	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	if err := g.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	if got := g.State().Phase; got != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated after sign-out, got %s", got)
	}
	if store.signOutCalls != 1 {
		t.Fatalf("expected one store sign-out, got %d", store.signOutCalls)
	}
}

func TestGate_GuestSurvivesRefreshNoise(t *testing.T) {
	store := newFakeStore(nil)
	g := New(store, nil)
	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	g.ContinueAsGuest()
	// A refresh probe with no session is not a sign-out; the guest flag is
	// local and the store never owned it.
	store.hub.Notify(session.Event{Type: session.TokenRefreshed})
	if got := g.State().Phase; got != PhaseGuest {
		t.Fatalf("expected guest to survive, got %s", got)
	}

	store.hub.Notify(session.Event{Type: session.SignedOut})
	if got := g.State().Phase; got != PhaseUnauthenticated {
		t.Fatalf("expected sign-out to demote guest, got %s", got)
	}
}

func TestGate_CloseReleasesSubscriptionOnce(t *testing.T) {
	store := newFakeStore(nil)
	g := New(store, nil)
	if err := g.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if store.hub.SubscriberCount() != 1 {
		t.Fatalf("expected one subscriber, got %d", store.hub.SubscriberCount())
	}

	g.Close()
	g.Close()

	if store.hub.SubscriberCount() != 0 {
		t.Fatalf("expected subscription released, got %d", store.hub.SubscriberCount())
	}

	store.signIn(&session.Session{UserID: "u-9"})
	if got := g.State().Phase; got != PhaseUnauthenticated {
		t.Fatalf("closed gate must not react to events, got %s", got)
	}
}

package authgate

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-navigator/internal/domain/session"
)

type fakeAuth struct {
	signUpCalls  int
	loginCalls   int
	magicCalls   int
	signUpErr    error
	loginErr     error
	magicErr     error
	lastEmail    string
	lastPassword string
	lastFullName string
	loginSession *session.Session
}

func (f *fakeAuth) SignUp(_ context.Context, email, password, fullName string) error {
	f.signUpCalls++
	f.lastEmail, f.lastPassword, f.lastFullName = email, password, fullName
	return f.signUpErr
}

func (f *fakeAuth) SignInWithPassword(_ context.Context, email, password string) (*session.Session, error) {
	f.loginCalls++
	f.lastEmail, f.lastPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginSession, nil
}

func (f *fakeAuth) SignInWithMagicLink(_ context.Context, email string) error {
	f.magicCalls++
	f.lastEmail = email
	return f.magicErr
}

// manualTimer swaps the signup return delay for a hand-cranked callback.
type manualTimer struct {
	delay time.Duration
	fn    func()
}

func (m *manualTimer) after(d time.Duration, fn func()) *time.Timer {
	m.delay = d
	m.fn = fn
	return time.NewTimer(time.Hour)
}

func TestForm_SignupPasswordMismatchNeverReachesStore(t *testing.T) {
	auth := &fakeAuth{}
	f := NewForm(auth, nil)
	f.SetMode(ModeSignup)
	f.SetFields("alice@example.com", "secret1", "secret2", "Alice")

	f.Submit(context.Background())

	if auth.signUpCalls != 0 {
		t.Fatalf("mismatched passwords must not reach the store, got %d calls", auth.signUpCalls)
	}
	if got := f.Error(); got != "Passwords do not match" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestForm_SignupPasswordLengthBoundary(t *testing.T) {
	auth := &fakeAuth{}
	f := NewForm(auth, nil)
	f.SetMode(ModeSignup)

	f.SetFields("alice@example.com", "12345", "12345", "Alice")
	f.Submit(context.Background())
	if auth.signUpCalls != 0 {
		t.Fatalf("5-character password must be rejected locally")
	}
	if got := f.Error(); got != "Password must be at least 6 characters" {
		t.Fatalf("unexpected error message %q", got)
	}

	f.SetFields("alice@example.com", "123456", "123456", "Alice")
	f.Submit(context.Background())
	if auth.signUpCalls != 1 {
		t.Fatalf("6-character password must reach the store, got %d calls", auth.signUpCalls)
	}
}

func TestForm_SignupSuccessReturnsToLoginAfterDelay(t *testing.T) {
	auth := &fakeAuth{}
	timer := &manualTimer{}
	f := NewForm(auth, nil)
	f.after = timer.after
	f.SetMode(ModeSignup)
	f.SetFields("alice@example.com", "secret1", "secret1", "Alice")

	f.Submit(context.Background())

	if got := f.Success(); got != "Sign up successful! Please check your email to confirm." {
		t.Fatalf("unexpected success message %q", got)
	}
	if f.Mode() != ModeSignup {
		t.Fatalf("mode must not flip before the delay")
	}
	if timer.delay != 3*time.Second {
		t.Fatalf("expected 3s return delay, got %s", timer.delay)
	}

	timer.fn()

	if f.Mode() != ModeLogin {
		t.Fatalf("expected return to login, got %s", f.Mode())
	}
	if f.Success() != "" {
		t.Fatalf("success message must clear on return")
	}
}

func TestForm_LoginSuccessFiresCallbackAndClearsFields(t *testing.T) {
	auth := &fakeAuth{loginSession: &session.Session{UserID: "u-1"}}
	var fired int
	f := NewForm(auth, func() { fired++ })
	f.SetFields("alice@example.com", "secret1", "", "")

	f.Submit(context.Background())

	if fired != 1 {
		t.Fatalf("expected onSuccess exactly once, got %d", fired)
	}
	if got := f.Success(); got != "Logged in successfully!" {
		t.Fatalf("unexpected success message %q", got)
	}
	if f.Email() != "" {
		t.Fatalf("email must clear after login")
	}
}

func TestForm_LoginFailureShowsStoreErrorVerbatim(t *testing.T) {
	auth := &fakeAuth{loginErr: errors.New("Invalid login credentials")}
	var fired int
	f := NewForm(auth, func() { fired++ })
	f.SetFields("alice@example.com", "wrong", "", "")

	f.Submit(context.Background())

	if fired != 0 {
		t.Fatalf("failed login must not fire onSuccess")
	}
	if got := f.Error(); got != "Invalid login credentials" {
		t.Fatalf("store error must pass through verbatim, got %q", got)
	}
}

func TestForm_MagicLinkSendsWithoutTransition(t *testing.T) {
	auth := &fakeAuth{}
	var fired int
	f := NewForm(auth, func() { fired++ })
	f.SetStrategy(StrategyMagicLink)
	f.SetFields("alice@example.com", "", "", "")

	f.Submit(context.Background())

	if auth.magicCalls != 1 {
		t.Fatalf("expected one magic-link send, got %d", auth.magicCalls)
	}
	if fired != 0 {
		t.Fatalf("magic link must not fire onSuccess; the emailed link completes login")
	}
	if got := f.Success(); got != "Check your email for a magic link to log in!" {
		t.Fatalf("unexpected success message %q", got)
	}
	if f.Email() != "" {
		t.Fatalf("email must clear after the link is sent")
	}
}

func TestForm_MagicLinkSkipsPasswordValidation(t *testing.T) {
	auth := &fakeAuth{}
	f := NewForm(auth, nil)
	f.SetMode(ModeSignup)
	f.SetStrategy(StrategyMagicLink)
	// Password fields would fail validation, but the strategy ignores them.
	f.SetFields("alice@example.com", "a", "b", "Alice")

	f.Submit(context.Background())

	if auth.magicCalls != 1 {
		t.Fatalf("magic-link strategy must ignore password fields, got %d calls", auth.magicCalls)
	}
	if f.Error() != "" {
		t.Fatalf("unexpected validation error %q", f.Error())
	}
}

func TestForm_SwitchingModeClearsMessages(t *testing.T) {
	auth := &fakeAuth{loginErr: errors.New("Invalid login credentials")}
	f := NewForm(auth, nil)
	f.SetFields("alice@example.com", "wrong", "", "")
	f.Submit(context.Background())
	if f.Error() == "" {
		t.Fatalf("expected a login error to clear")
	}

	f.SetMode(ModeSignup)
	if f.Error() != "" || f.Success() != "" {
		t.Fatalf("mode switch must clear messages")
	}
}

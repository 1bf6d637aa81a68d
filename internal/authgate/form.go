package authgate

import (
	"context"
	"sync"
	"time"

	"career-navigator/internal/domain/session"
)

type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

type Strategy string

const (
	StrategyPassword  Strategy = "password"
	StrategyMagicLink Strategy = "magic-link"
)

const (
	msgPasswordMismatch = "Passwords do not match"
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgMagicLinkSent    = "Check your email for a magic link to log in!"
	msgSignupPending    = "Sign up successful! Please check your email to confirm."
	msgLoggedIn         = "Logged in successfully!"

	minPasswordLen    = 6
	signupReturnDelay = 3 * time.Second
)

// Authenticator is the slice of the store client the form submits through.
type Authenticator interface {
	SignUp(ctx context.Context, email, password, fullName string) error
	SignInWithPassword(ctx context.Context, email, password string) (*session.Session, error)
	SignInWithMagicLink(ctx context.Context, email string) error
}

// Form is the credential sub-flow nested inside the unauthenticated state:
// two modes (login, signup), two strategies (password, magic-link), local
// validation before any network call, and store failures shown verbatim.
type Form struct {
	auth      Authenticator
	onSuccess func()

	// after is time.AfterFunc unless a test swaps it.
	after func(time.Duration, func()) *time.Timer

	mu       sync.Mutex
	mode     Mode
	strategy Strategy
	busy     bool

	email    string
	password string
	confirm  string
	fullName string

	errMsg     string
	successMsg string
}

// ValidateSignupPassword returns the validation message for a signup attempt,
// or "" when the attempt may proceed to the store.
func ValidateSignupPassword(password, confirm string) string {
	if password != confirm {
		return msgPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return msgPasswordTooShort
	}
	return ""
}

// NewForm builds a form in login/password mode. onSuccess fires on password
// login only; the gate treats it as an authentication transition.
func NewForm(auth Authenticator, onSuccess func()) *Form {
	return &Form{
		auth:      auth,
		onSuccess: onSuccess,
		after:     time.AfterFunc,
		mode:      ModeLogin,
		strategy:  StrategyPassword,
	}
}

func (f *Form) SetMode(m Mode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = m
	f.errMsg = ""
	f.successMsg = ""
}

func (f *Form) SetStrategy(s Strategy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strategy = s
	f.errMsg = ""
	f.successMsg = ""
}

func (f *Form) SetFields(email, password, confirm, fullName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
	f.password = password
	f.confirm = confirm
	f.fullName = fullName
}

func (f *Form) Mode() Mode         { f.mu.Lock(); defer f.mu.Unlock(); return f.mode }
func (f *Form) Strategy() Strategy { f.mu.Lock(); defer f.mu.Unlock(); return f.strategy }
func (f *Form) Busy() bool         { f.mu.Lock(); defer f.mu.Unlock(); return f.busy }
func (f *Form) Error() string      { f.mu.Lock(); defer f.mu.Unlock(); return f.errMsg }
func (f *Form) Success() string    { f.mu.Lock(); defer f.mu.Unlock(); return f.successMsg }
func (f *Form) Email() string      { f.mu.Lock(); defer f.mu.Unlock(); return f.email }

// Submit runs the current mode and strategy. Re-entrant submissions while a
// request is in flight are dropped, mirroring the disabled submit button.
func (f *Form) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return
	}
	f.errMsg = ""
	f.successMsg = ""
	mode, strategy := f.mode, f.strategy
	email, password, confirm, fullName := f.email, f.password, f.confirm, f.fullName

	if strategy == StrategyPassword && mode == ModeSignup {
		// Local validation: rejected input never reaches the store.
		if msg := ValidateSignupPassword(password, confirm); msg != "" {
			f.errMsg = msg
			f.mu.Unlock()
			return
		}
	}

	f.busy = true
	f.mu.Unlock()

	switch {
	case strategy == StrategyMagicLink:
		f.submitMagicLink(ctx, email)
	case mode == ModeSignup:
		f.submitSignup(ctx, email, password, fullName)
	default:
		f.submitLogin(ctx, email, password)
	}
}

func (f *Form) submitMagicLink(ctx context.Context, email string) {
	err := f.auth.SignInWithMagicLink(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.errMsg = err.Error()
		return
	}
	// The user finishes login from the emailed link; no transition here.
	f.successMsg = msgMagicLinkSent
	f.email = ""
}

func (f *Form) submitSignup(ctx context.Context, email, password, fullName string) {
	err := f.auth.SignUp(ctx, email, password, fullName)

	f.mu.Lock()
	f.busy = false
	if err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		return
	}
	f.successMsg = msgSignupPending
	f.email = ""
	f.password = ""
	f.confirm = ""
	f.fullName = ""
	f.mu.Unlock()

	f.after(signupReturnDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.mode = ModeLogin
		f.successMsg = ""
	})
}

func (f *Form) submitLogin(ctx context.Context, email, password string) {
	_, err := f.auth.SignInWithPassword(ctx, email, password)

	f.mu.Lock()
	f.busy = false
	if err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		return
	}
	f.successMsg = msgLoggedIn
	f.email = ""
	f.password = ""
	onSuccess := f.onSuccess
	f.mu.Unlock()

	if onSuccess != nil {
		onSuccess()
	}
}

package sessionstore

import (
	"context"
	"strings"
	"time"

	"career-navigator/internal/domain/session"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (c *Client) sessionFromToken(tr tokenResponse) *session.Session {
	s := &session.Session{
		UserID:       tr.User.ID,
		Email:        tr.User.Email,
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
	}
	if tr.ExpiresIn > 0 {
		s.ExpiresAt = c.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	// Prefer the claims baked into the access token when we can read them;
	// they are authoritative for identity and expiry.
	if claims, err := c.tokens.Parse(tr.AccessToken); err == nil {
		if claims.Subject != "" {
			s.UserID = claims.Subject
		}
		if claims.Email != "" {
			s.Email = claims.Email
		}
		if claims.ExpiresAt != nil {
			s.ExpiresAt = claims.ExpiresAt.Time
		}
	}
	return s
}

// SignUp creates an account. The store sends a confirmation email; no session
// exists until the user confirms and logs in.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) error {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if strings.TrimSpace(fullName) != "" {
		body["data"] = map[string]any{"full_name": fullName}
	}
	return c.do(ctx, requestOpts{
		method: "POST",
		path:   "/auth/v1/signup",
		key:    c.authKey(),
		body:   body,
	}, nil)
}

// SignInWithPassword exchanges credentials for a session and notifies
// subscribers of the sign-in.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*session.Session, error) {
	var tr tokenResponse
	err := c.do(ctx, requestOpts{
		method: "POST",
		path:   "/auth/v1/token",
		query:  "grant_type=password",
		key:    c.authKey(),
		body:   map[string]string{"email": email, "password": password},
	}, &tr)
	if err != nil {
		return nil, err
	}

	s := c.sessionFromToken(tr)
	c.setSession(s, session.SignedIn)
	cp := *s
	return &cp, nil
}

// SignInWithMagicLink asks the store to email a one-time login link. Success
// does not create a session; the user completes login out-of-band.
func (c *Client) SignInWithMagicLink(ctx context.Context, email string) error {
	return c.do(ctx, requestOpts{
		method: "POST",
		path:   "/auth/v1/otp",
		key:    c.authKey(),
		body:   map[string]any{"email": email, "create_user": true},
	}, nil)
}

// RefreshSession rotates the held session's tokens and notifies subscribers.
func (c *Client) RefreshSession(ctx context.Context) (*session.Session, error) {
	c.mu.RLock()
	cur := c.current
	c.mu.RUnlock()
	if cur == nil || cur.RefreshToken == "" {
		return nil, ErrNotConfigured
	}

	var tr tokenResponse
	err := c.do(ctx, requestOpts{
		method: "POST",
		path:   "/auth/v1/token",
		query:  "grant_type=refresh_token",
		key:    c.authKey(),
		body:   map[string]string{"refresh_token": cur.RefreshToken},
	}, &tr)
	if err != nil {
		return nil, err
	}

	s := c.sessionFromToken(tr)
	c.setSession(s, session.TokenRefreshed)
	cp := *s
	return &cp, nil
}

// SignOut revokes the held session at the store and clears it locally. The
// state transition reaches observers through the SIGNED_OUT notification, not
// through this call's return value.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.RLock()
	cur := c.current
	c.mu.RUnlock()

	if cur != nil && cur.AccessToken != "" {
		// Best effort: a failed revocation still drops the local session.
		err := c.do(ctx, requestOpts{
			method: "POST",
			path:   "/auth/v1/logout",
			key:    c.authKey(),
			bearer: cur.AccessToken,
		}, nil)
		if err != nil && c.logger != nil {
			c.logger.Printf("[Store] sign-out revocation failed | err=%v", err)
		}
	}

	c.setSession(nil, session.SignedOut)
	return nil
}

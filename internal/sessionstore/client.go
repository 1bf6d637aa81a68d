// Package sessionstore is the HTTP client for the hosted identity and data
// provider. The store owns sessions, the users table, and the roadmaps table;
// this package only calls it and relays its change notifications.
package sessionstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"career-navigator/internal/config"
	"career-navigator/internal/domain/session"
	"career-navigator/internal/pkg/sessiontoken"
)

// StoreError carries the store's own message verbatim. Callers surface it
// untouched; nothing here retries or rewrites it.
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

var ErrNotConfigured = errors.New("session store not configured")

type Client struct {
	baseURL    string
	serviceKey string
	anonKey    string

	http   *http.Client
	logger *log.Logger
	tokens *sessiontoken.Parser
	hub    *Hub
	now    func() time.Time

	mu      sync.RWMutex
	current *session.Session
}

func NewClient(cfg config.StoreConfig, logger *log.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		serviceKey: strings.TrimSpace(cfg.ServiceKey),
		anonKey:    strings.TrimSpace(cfg.AnonKey),
		http:       &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		tokens:     sessiontoken.NewParser(cfg.JWTSecret),
		hub:        NewHub(),
		now:        time.Now,
	}
}

// OnAuthStateChange registers an observer for the store's auth notification
// stream. The returned subscription must be released by the caller; Unsubscribe
// is safe to call more than once.
func (c *Client) OnAuthStateChange(fn func(session.Event)) *Subscription {
	return c.hub.Subscribe(fn)
}

// GetSession returns the currently held session, or nil when none exists or
// the held one has expired. It never calls the network.
func (c *Client) GetSession(ctx context.Context) (*session.Session, error) {
	_ = ctx
	c.mu.RLock()
	s := c.current
	c.mu.RUnlock()

	if !s.Valid(c.now()) {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (c *Client) setSession(s *session.Session, evt session.EventType) {
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()

	var cp *session.Session
	if s != nil {
		v := *s
		cp = &v
	}
	c.hub.Notify(session.Event{Type: evt, Session: cp})
}

func (c *Client) configured() bool {
	return c != nil && c.baseURL != "" && (c.serviceKey != "" || c.anonKey != "")
}

// authKey is what browser-side calls would carry; table writes always use the
// privileged service key.
func (c *Client) authKey() string {
	if c.anonKey != "" {
		return c.anonKey
	}
	return c.serviceKey
}

func (c *Client) tableKey() string {
	if c.serviceKey != "" {
		return c.serviceKey
	}
	return c.anonKey
}

type requestOpts struct {
	method string
	path   string
	query  string
	key    string
	bearer string
	prefer string
	body   any
}

func (c *Client) do(ctx context.Context, opts requestOpts, out any) error {
	if !c.configured() {
		return ErrNotConfigured
	}

	var rd io.Reader
	if opts.body != nil {
		b, err := json.Marshal(opts.body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	endpoint := c.baseURL + opts.path
	if opts.query != "" {
		endpoint += "?" + opts.query
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, endpoint, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", opts.key)
	bearer := opts.bearer
	if bearer == "" {
		bearer = opts.key
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if opts.prefer != "" {
		req.Header.Set("Prefer", opts.prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// An unreachable store surfaces exactly like a store rejection.
		return &StoreError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := storeMessage(raw)
		if msg == "" {
			msg = fmt.Sprintf("store request failed: status=%d", resp.StatusCode)
		}
		if c.logger != nil {
			c.logger.Printf("[Store] request failed | method=%s path=%s status=%d msg=%q", opts.method, opts.path, resp.StatusCode, msg)
		}
		return &StoreError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// storeMessage digs the human message out of the store's error body. The
// store is not consistent about the field name across its auth and rest
// surfaces.
func storeMessage(raw []byte) string {
	var body struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Err              string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, m := range []string{body.ErrorDescription, body.Msg, body.Message, body.Err} {
		if strings.TrimSpace(m) != "" {
			return m
		}
	}
	return ""
}

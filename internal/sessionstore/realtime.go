package sessionstore

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// TableChange is a row-level change pushed by the store's realtime socket.
type TableChange struct {
	Table  string
	Type   string
	Record json.RawMessage
}

// Listener keeps a websocket open against the store's realtime endpoint and
// forwards roadmap table changes to a callback. It is optional wiring: when
// the store is unreachable the rest of the system degrades to local events
// only.
type Listener struct {
	wsURL    string
	apikey   string
	topic    string
	logger   *log.Logger
	onChange func(TableChange)

	dial func(string) (*websocket.Conn, error)
}

const (
	realtimePath      = "/realtime/v1/websocket"
	heartbeatInterval = 30 * time.Second
	reconnectDelay    = 5 * time.Second
)

func NewListener(baseURL, apikey, table string, logger *log.Logger, onChange func(TableChange)) *Listener {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" || onChange == nil {
		return nil
	}

	ws := strings.Replace(base, "https://", "wss://", 1)
	ws = strings.Replace(ws, "http://", "ws://", 1)

	q := url.Values{}
	q.Set("apikey", apikey)
	q.Set("vsn", "1.0.0")

	return &Listener{
		wsURL:    ws + realtimePath + "?" + q.Encode(),
		apikey:   apikey,
		topic:    "realtime:public:" + table,
		logger:   logger,
		onChange: onChange,
		dial: func(u string) (*websocket.Conn, error) {
			conn, _, err := websocket.DefaultDialer.Dial(u, nil)
			return conn, err
		},
	}
}

type phoenixMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref"`
}

type changePayload struct {
	Table  string          `json:"table"`
	Type   string          `json:"type"`
	Record json.RawMessage `json:"record"`
}

// Run blocks until ctx is done, reconnecting with a flat delay after any
// connection failure.
func (l *Listener) Run(ctx context.Context) {
	if l == nil {
		return
	}
	for {
		if err := l.serve(ctx); err != nil && l.logger != nil {
			l.logger.Printf("[Realtime] connection lost | err=%v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) serve(ctx context.Context) error {
	conn, err := l.dial(l.wsURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	ref := 0
	send := func(topic, event string, payload any) error {
		ref++
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		return conn.WriteJSON(phoenixMessage{Topic: topic, Event: event, Payload: b, Ref: strconv.Itoa(ref)})
	}

	if err := send(l.topic, "phx_join", map[string]any{}); err != nil {
		return err
	}
	if l.logger != nil {
		l.logger.Printf("[Realtime] joined | topic=%s", l.topic)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(heartbeatInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				_ = conn.Close()
				return
			case <-t.C:
				if err := send("phoenix", "heartbeat", map[string]any{}); err != nil {
					_ = conn.Close()
					return
				}
			}
		}
	}()

	for {
		var msg phoenixMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		switch msg.Event {
		case "INSERT", "UPDATE", "DELETE":
			var p changePayload
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				continue
			}
			if p.Type == "" {
				p.Type = msg.Event
			}
			l.onChange(TableChange{Table: p.Table, Type: p.Type, Record: p.Record})
		case "phx_reply", "phx_error", "heartbeat":
			// join acks and heartbeat replies carry nothing we act on
		}
	}
}

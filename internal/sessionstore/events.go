package sessionstore

import (
	"sync"

	"career-navigator/internal/domain/session"
)

// Hub fans auth change notifications out to registered observers. Dispatch is
// synchronous and in registration order, which keeps state transitions
// observable without races: by the time a store call returns, every observer
// has seen the event.
type Hub struct {
	mu   sync.Mutex
	seq  int
	subs map[int]func(session.Event)
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(session.Event))}
}

// Subscription pairs a registration with its guaranteed-single release.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe releases the registration. Calling it again is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

func (h *Hub) Subscribe(fn func(session.Event)) *Subscription {
	if h == nil || fn == nil {
		return &Subscription{cancel: func() {}}
	}

	h.mu.Lock()
	h.seq++
	id := h.seq
	h.subs[id] = fn
	h.mu.Unlock()

	return &Subscription{cancel: func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}}
}

func (h *Hub) Notify(evt session.Event) {
	if h == nil {
		return
	}

	h.mu.Lock()
	ids := make([]int, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	// Registration order, not map order.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	fns := make([]func(session.Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, h.subs[id])
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(evt)
	}
}

func (h *Hub) SubscriberCount() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

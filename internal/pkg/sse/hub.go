package sse

import (
	"sync"
)

// Event is a server-sent event pushed to role subscribers.
type Event struct {
	Role  string
	Event string
	Data  interface{}
}

// Hub manages SSE subscribers keyed by role. Punch notifications target
// roles ("admin"), not individual users, so subscriptions are role-wide.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a role and returns the event channel
// and a cleanup function.
func (h *Hub) Subscribe(role string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[role] == nil {
		h.subscribers[role] = make(map[chan Event]struct{})
	}
	h.subscribers[role][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[role], ch)
		close(ch)
		if len(h.subscribers[role]) == 0 {
			delete(h.subscribers, role)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a role.
func (h *Hub) Publish(role string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[role]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// PublishToRoles sends an event to every listed role.
func (h *Hub) PublishToRoles(roles []string, event Event) {
	for _, role := range roles {
		eventCopy := event
		eventCopy.Role = role
		h.Publish(role, eventCopy)
	}
}

// SubscriberCount returns the number of active subscribers for a role.
func (h *Hub) SubscriberCount(role string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[role]; ok {
		return len(subs)
	}
	return 0
}

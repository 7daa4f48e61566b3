package toast

import "sync"

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Toast is a single transient alert.
type Toast struct {
	// Level is the visual severity of the toast.
	Level Type

	// Title is an optional heading.
	Title string

	// Message is the alert body.
	Message string

	// Link is an optional deep-link target the view may offer as an action.
	Link string
}

// Hub fans toasts out to subscribers. Safe for concurrent use.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint64]func(Toast)
	next uint64
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]func(Toast))}
}

// Subscribe registers fn to receive every toast shown after this call.
// The returned cancel function removes the subscription.
func (h *Hub) Subscribe(fn func(Toast)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	h.mu.Lock()
	h.next++
	id := h.next
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Show delivers a toast to all current subscribers.
func (h *Hub) Show(t Toast) {
	h.mu.RLock()
	subs := make([]func(Toast), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.RUnlock()

	for _, fn := range subs {
		fn(t)
	}
}

// Success shows a success toast.
//
//	hub.Success("Account created successfully!")
func (h *Hub) Success(message string) {
	h.Show(Toast{Level: TypeSuccess, Message: message})
}

// Error shows an error toast.
func (h *Hub) Error(message string) {
	h.Show(Toast{Level: TypeError, Message: message})
}

// Warning shows a warning toast.
func (h *Hub) Warning(message string) {
	h.Show(Toast{Level: TypeWarning, Message: message})
}

// Info shows an info toast.
func (h *Hub) Info(message string) {
	h.Show(Toast{Level: TypeInfo, Message: message})
}

// WithTitle shows a toast with a title, message and optional link.
//
//	hub.WithTitle(toast.TypeInfo, "New job match", "Construction Helper near you", "/jobs/1")
func (h *Hub) WithTitle(level Type, title, message, link string) {
	h.Show(Toast{Level: level, Title: title, Message: message, Link: link})
}

package chat

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTransportClosed is returned by Send after Close.
var ErrTransportClosed = errors.New("chat: transport is closed")

// ErrUnknownContact is returned by SendMessage for a contact not in the
// contact list.
var ErrUnknownContact = errors.New("chat: unknown contact id")

// ErrEmptyMessage is returned by SendMessage for empty text.
var ErrEmptyMessage = errors.New("chat: message text must not be empty")

// Transport carries messages between the client and the other party.
type Transport interface {
	// Send delivers an outbound message.
	Send(ctx context.Context, m Message) error

	// Incoming yields inbound messages until the transport closes.
	Incoming() <-chan Message

	// Close shuts the transport down and closes the Incoming channel.
	Close() error
}

// cannedReplies are the simulated other party's responses, in rotation.
var cannedReplies = []string{
	"Thank you for your message. I will get back to you shortly.",
	"Can you come tomorrow at 10 AM?",
	"Please bring your ID proof.",
	"Your interview is confirmed for tomorrow at 2:30 PM.",
}

// MockTransport simulates the other party in-process: every sent message
// produces a canned reply after an optional latency.
type MockTransport struct {
	latency time.Duration
	now     func() time.Time

	incoming chan Message
	done     chan struct{}

	mu       sync.Mutex
	replyIdx int
	closed   bool
	pending  sync.WaitGroup
}

// MockOption configures MockTransport.
type MockOption func(*MockTransport)

// WithReplyLatency sets the delay before a canned reply arrives.
func WithReplyLatency(d time.Duration) MockOption {
	return func(t *MockTransport) {
		t.latency = d
	}
}

// WithClock overrides the reply timestamp clock. Used by tests.
func WithClock(now func() time.Time) MockOption {
	return func(t *MockTransport) {
		t.now = now
	}
}

// NewMockTransport creates a mock transport.
func NewMockTransport(opts ...MockOption) *MockTransport {
	t := &MockTransport{
		now:      time.Now,
		incoming: make(chan Message, 16),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send accepts the outbound message and schedules a canned reply.
func (t *MockTransport) Send(ctx context.Context, m Message) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrTransportClosed
	}
	reply := cannedReplies[t.replyIdx%len(cannedReplies)]
	t.replyIdx++
	t.pending.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.pending.Done()
		if t.latency > 0 {
			timer := time.NewTimer(t.latency)
			defer timer.Stop()
			select {
			case <-t.done:
				return
			case <-timer.C:
			}
		}
		select {
		case <-t.done:
		case t.incoming <- Message{
			ContactID: m.ContactID,
			Text:      reply,
			SentAt:    t.now(),
			Inbound:   true,
		}:
		}
	}()
	return nil
}

// Incoming yields the simulated replies.
func (t *MockTransport) Incoming() <-chan Message {
	return t.incoming
}

// Close stops reply delivery and closes the Incoming channel.
func (t *MockTransport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	close(t.done)
	t.mu.Unlock()

	t.pending.Wait()
	close(t.incoming)
	return nil
}

package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skilllink-dev/skilllink/pkg/reactive"
)

// Notifier receives inbox-worthy chat events. The app wires it to the
// notification store.
type Notifier func(title, message, link string)

// Config configures the chat store.
type Config struct {
	// Transport carries messages. Defaults to a mock transport.
	Transport Transport

	// Contacts seeds the contact list. Defaults to DefaultContacts.
	Contacts []Contact

	// Notify receives new-message events. Optional.
	Notify Notifier

	// Logger receives transport warnings. Defaults to slog.Default.
	Logger *slog.Logger

	// Now is the clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

// Store owns the contact list and per-conversation message threads.
type Store struct {
	transport Transport
	notify    Notifier
	logger    *slog.Logger
	now       func() time.Time

	contacts *reactive.Signal[[]Contact]
	threads  *reactive.Signal[map[string][]Message]

	done      chan struct{}
	closeOnce sync.Once
}

// NewStore creates the chat store and starts consuming inbound messages.
func NewStore(cfg Config) *Store {
	if cfg.Transport == nil {
		cfg.Transport = NewMockTransport()
	}
	if cfg.Contacts == nil {
		cfg.Contacts = DefaultContacts()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Store{
		transport: cfg.Transport,
		notify:    cfg.Notify,
		logger:    cfg.Logger,
		now:       cfg.Now,
		contacts:  reactive.NewSignal(cfg.Contacts),
		threads:   reactive.NewSignal(map[string][]Message{}),
		done:      make(chan struct{}),
	}
	go s.receiveLoop()
	return s
}

// Contacts returns the contact list.
func (s *Store) Contacts() []Contact {
	contacts := s.contacts.Get()
	out := make([]Contact, len(contacts))
	copy(out, contacts)
	return out
}

// Contact looks a contact up by ID.
func (s *Store) Contact(id string) (Contact, bool) {
	for _, c := range s.contacts.Get() {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// Messages returns the thread with the given contact, oldest first.
func (s *Store) Messages(contactID string) []Message {
	thread := s.threads.Get()[contactID]
	out := make([]Message, len(thread))
	copy(out, thread)
	return out
}

// Subscribe registers fn to run whenever any thread changes.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	return s.threads.Subscribe(func(map[string][]Message) { fn() })
}

// SendMessage appends the user's message to the thread and delivers it
// through the transport.
func (s *Store) SendMessage(ctx context.Context, contactID, text string) (Message, error) {
	if _, ok := s.Contact(contactID); !ok {
		return Message{}, ErrUnknownContact
	}
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	m := Message{
		ID:        uuid.NewString(),
		ContactID: contactID,
		Text:      text,
		SentAt:    s.now(),
	}
	s.append(m)

	if err := s.transport.Send(ctx, m); err != nil {
		return Message{}, err
	}
	return m, nil
}

// Close stops the inbound consumer and the transport.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.transport.Close()
		<-s.done
	})
	return err
}

// receiveLoop appends inbound messages and raises notifications.
func (s *Store) receiveLoop() {
	defer close(s.done)
	for m := range s.transport.Incoming() {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.SentAt.IsZero() {
			m.SentAt = s.now()
		}
		s.append(m)

		if s.notify != nil {
			name := m.ContactID
			if c, ok := s.Contact(m.ContactID); ok {
				name = c.Name
			}
			s.notify("New Message from "+name, m.Text, "/chat/"+m.ContactID)
		}
	}
}

// append adds a message to its thread, copy-on-write.
func (s *Store) append(m Message) {
	s.threads.Update(func(threads map[string][]Message) map[string][]Message {
		next := make(map[string][]Message, len(threads))
		for k, v := range threads {
			next[k] = v
		}
		thread := next[m.ContactID]
		updated := make([]Message, len(thread), len(thread)+1)
		copy(updated, thread)
		next[m.ContactID] = append(updated, m)
		return next
	})
}

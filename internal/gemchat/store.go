package gemchat

import "sync"

// Op describes a store mutation.
type Op string

const (
	OpAppend Op = "append"
	OpRemove Op = "remove"
	OpReset  Op = "reset"
)

// Event is delivered to subscribers after each mutation. For OpAppend
// and OpReset, Message is the message that entered the log; for
// OpRemove it is the message that left it.
type Event struct {
	Op      Op
	Message Message
}

// Store is an ordered, in-memory conversation log. Insertion order is
// display order. All operations are total: removing an unknown ID is a
// no-op, not an error. The store serializes its own mutations, so the
// UI loop and completion callbacks can share one instance.
type Store struct {
	mu       sync.RWMutex
	messages []Message
	welcome  string
	nextSub  int
	subs     map[int]func(Event)
}

// NewStore creates a store. When welcome is non-empty the log is seeded
// with one assistant-authored welcome turn.
func NewStore(welcome string) *Store {
	s := &Store{
		welcome: welcome,
		subs:    make(map[int]func(Event)),
	}
	if welcome != "" {
		s.messages = append(s.messages, NewMessage(AuthorAssistant, welcome))
	}
	return s
}

// Append adds msg to the end of the log. No dedup, no content checks.
func (s *Store) Append(msg Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	subs := s.subscribers()
	s.mu.Unlock()

	notify(subs, Event{Op: OpAppend, Message: msg})
}

// Remove deletes the message with the given ID if present.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	var removed *Message
	for i, msg := range s.messages {
		if msg.ID == id {
			m := msg
			removed = &m
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			break
		}
	}
	subs := s.subscribers()
	s.mu.Unlock()

	if removed != nil {
		notify(subs, Event{Op: OpRemove, Message: *removed})
	}
}

// Reset clears the log and seeds exactly one fresh assistant welcome
// turn with a new ID and the current time, regardless of prior content.
func (s *Store) Reset() {
	welcome := NewMessage(AuthorAssistant, s.welcome)

	s.mu.Lock()
	s.messages = []Message{welcome}
	subs := s.subscribers()
	s.mu.Unlock()

	notify(subs, Event{Op: OpReset, Message: welcome})
}

// List returns a snapshot of the log. The copy is safe to iterate while
// the store keeps mutating.
func (s *Store) List() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the log.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Subscribe registers fn to be called after each mutation. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// subscribers snapshots the callback set. Caller must hold mu.
func (s *Store) subscribers() []func(Event) {
	out := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// notify runs outside the lock so callbacks may call back into the store.
func notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}

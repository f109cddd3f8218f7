package gemchat

import "testing"

func TestNewStoreSeedsWelcome(t *testing.T) {
	s := NewStore("Hi! How can I help you today?")

	msgs := s.List()
	if len(msgs) != 1 {
		t.Fatalf("len = %d, want 1", len(msgs))
	}
	if msgs[0].Author != AuthorAssistant {
		t.Errorf("author = %s, want %s", msgs[0].Author, AuthorAssistant)
	}
	if msgs[0].Text != "Hi! How can I help you today?" {
		t.Errorf("text = %q", msgs[0].Text)
	}
	if msgs[0].ID == "" {
		t.Error("welcome message has no ID")
	}

	if empty := NewStore(""); empty.Len() != 0 {
		t.Errorf("store without welcome has %d messages, want 0", empty.Len())
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s := NewStore("")

	texts := []string{"one", "two", "three", "four", "five"}
	for i, text := range texts {
		author := AuthorUser
		if i%2 == 1 {
			author = AuthorAssistant
		}
		s.Append(NewMessage(author, text))
	}

	msgs := s.List()
	if len(msgs) != len(texts) {
		t.Fatalf("len = %d, want %d", len(msgs), len(texts))
	}
	for i, text := range texts {
		if msgs[i].Text != text {
			t.Errorf("msgs[%d].Text = %q, want %q", i, msgs[i].Text, text)
		}
	}
}

func TestRemove(t *testing.T) {
	s := NewStore("")
	first := NewMessage(AuthorUser, "first")
	second := NewMessage(AuthorAssistant, "second")
	third := NewMessage(AuthorUser, "third")
	s.Append(first)
	s.Append(second)
	s.Append(third)

	s.Remove(second.ID)

	msgs := s.List()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].ID != first.ID || msgs[1].ID != third.ID {
		t.Errorf("order after remove: %q, %q", msgs[0].Text, msgs[1].Text)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	s := NewStore("")
	s.Append(NewMessage(AuthorUser, "a"))
	s.Append(NewMessage(AuthorAssistant, "b"))
	before := s.List()

	s.Remove("no-such-id")

	after := s.List()
	if len(after) != len(before) {
		t.Fatalf("len changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Errorf("order changed at %d", i)
		}
	}
}

func TestResetAlwaysLeavesOneWelcome(t *testing.T) {
	s := NewStore("welcome")
	oldWelcomeID := s.List()[0].ID
	s.Append(NewMessage(AuthorUser, "hello"))
	s.Append(NewMessage(AuthorAssistant, "hi"))

	s.Reset()

	msgs := s.List()
	if len(msgs) != 1 {
		t.Fatalf("len = %d, want 1", len(msgs))
	}
	if msgs[0].Author != AuthorAssistant {
		t.Errorf("author = %s, want %s", msgs[0].Author, AuthorAssistant)
	}
	if msgs[0].ID == oldWelcomeID {
		t.Error("reset reused the previous welcome ID")
	}

	// reset on an already-empty store still seeds exactly one turn
	empty := NewStore("")
	empty.Reset()
	if empty.Len() != 1 {
		t.Errorf("len after reset of empty store = %d, want 1", empty.Len())
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	s := NewStore("")
	s.Append(NewMessage(AuthorUser, "a"))

	snapshot := s.List()
	s.Append(NewMessage(AuthorUser, "b"))
	s.Reset()

	if len(snapshot) != 1 || snapshot[0].Text != "a" {
		t.Errorf("snapshot mutated: %+v", snapshot)
	}
}

func TestSubscribe(t *testing.T) {
	s := NewStore("")

	var events []Event
	cancel := s.Subscribe(func(ev Event) {
		events = append(events, ev)
	})

	msg := NewMessage(AuthorUser, "hello")
	s.Append(msg)
	s.Remove(msg.ID)
	s.Remove("no-such-id") // no event for a no-op
	s.Reset()

	wantOps := []Op{OpAppend, OpRemove, OpReset}
	if len(events) != len(wantOps) {
		t.Fatalf("got %d events, want %d", len(events), len(wantOps))
	}
	for i, op := range wantOps {
		if events[i].Op != op {
			t.Errorf("events[%d].Op = %s, want %s", i, events[i].Op, op)
		}
	}
	if events[0].Message.ID != msg.ID || events[1].Message.ID != msg.ID {
		t.Error("append/remove events carry the wrong message")
	}

	cancel()
	s.Append(NewMessage(AuthorUser, "after cancel"))
	if len(events) != len(wantOps) {
		t.Error("subscriber called after cancel")
	}
}

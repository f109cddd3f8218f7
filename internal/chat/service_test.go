package chat_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gemchat-dev/gemchat/internal/chat"
	"github.com/gemchat-dev/gemchat/internal/gemchat"
	"github.com/gemchat-dev/gemchat/internal/gemini"
)

const apology = "Sorry, something went wrong. Please try again."

func newStubService(t *testing.T, welcome string, handler http.HandlerFunc) (*chat.Service, *gemchat.Store) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := gemchat.NewStore(welcome)
	client := gemini.NewClient(gemini.Config{BaseURL: srv.URL, Token: "test-key"})
	return chat.NewService(store, client, apology, 0, nil), store
}

func TestExchangeSuccess(t *testing.T) {
	svc, store := newStubService(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hi there!"}]}}]}`))
	})

	reply, err := svc.Exchange(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if reply.Author != gemchat.AuthorAssistant || reply.Text != "Hi there!" {
		t.Errorf("reply = %+v", reply)
	}

	msgs := store.List()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].Author != gemchat.AuthorUser || msgs[0].Text != "Hello" {
		t.Errorf("user turn = %+v", msgs[0])
	}
	if msgs[1].Author != gemchat.AuthorAssistant || msgs[1].Text != "Hi there!" {
		t.Errorf("assistant turn = %+v", msgs[1])
	}
}

func TestExchangeWithWelcome(t *testing.T) {
	svc, store := newStubService(t, "Welcome!", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hi there!"}]}}]}`))
	})

	if _, err := svc.Exchange(context.Background(), "Hello"); err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}

	msgs := store.List()
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if msgs[0].Text != "Welcome!" || msgs[1].Text != "Hello" || msgs[2].Text != "Hi there!" {
		t.Errorf("unexpected transcript: %q, %q, %q", msgs[0].Text, msgs[1].Text, msgs[2].Text)
	}
}

func TestExchangeFailureAppendsApology(t *testing.T) {
	// first request fails with an empty body, the second succeeds
	var calls atomic.Int64
	svc, store := newStubService(t, "", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			return // empty body
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Recovered"}]}}]}`))
	})

	apologyMsg, err := svc.Exchange(context.Background(), "Hello")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var cerr *gemini.Error
	if !errors.As(err, &cerr) || cerr.Kind != gemini.KindNoData {
		t.Errorf("error = %v, want kind %s", err, gemini.KindNoData)
	}
	if apologyMsg.Author != gemchat.AuthorAssistant || apologyMsg.Text != apology {
		t.Errorf("apology turn = %+v", apologyMsg)
	}

	// a failed exchange must not block the next one
	reply, err := svc.Exchange(context.Background(), "Again")
	if err != nil {
		t.Fatalf("second Exchange failed: %v", err)
	}
	if reply.Text != "Recovered" {
		t.Errorf("reply = %q, want %q", reply.Text, "Recovered")
	}

	msgs := store.List()
	if len(msgs) != 4 {
		t.Fatalf("len = %d, want 4", len(msgs))
	}
	if msgs[1].Text != apology {
		t.Errorf("msgs[1].Text = %q, want apology", msgs[1].Text)
	}
}

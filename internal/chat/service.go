// Package chat wires the conversation log to the completion client:
// one user turn in, one assistant turn (or apology) out.
package chat

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gemchat-dev/gemchat/internal/gemchat"
)

// Completer is the one call the service needs from the completion
// client. Implemented by gemini.Client.
type Completer interface {
	Send(ctx context.Context, prompt string) (string, error)
}

// Service runs exchanges against a store. Each exchange is independent:
// a failed one leaves the store usable and later exchanges unaffected.
type Service struct {
	store     *gemchat.Store
	completer Completer
	apology   string
	delay     time.Duration
	log       *slog.Logger
}

// NewService creates a service. apology is the assistant text appended
// when a completion fails; delay is an optional pause between accepting
// the user turn and sending it. A nil logger discards.
func NewService(store *gemchat.Store, completer Completer, apology string, delay time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		store:     store,
		completer: completer,
		apology:   apology,
		delay:     delay,
		log:       log,
	}
}

// Exchange appends the user turn, requests a completion, and appends
// the reply. On failure the configured apology turn is appended instead
// and the classified error is returned alongside it. The returned
// message is the assistant turn that entered the store.
func (s *Service) Exchange(ctx context.Context, text string) (gemchat.Message, error) {
	userMsg := gemchat.NewMessage(gemchat.AuthorUser, text)
	s.store.Append(userMsg)

	log := s.log.With("message_id", userMsg.ID)
	log.Info("sending prompt", "chars", len(text))

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			// Send will surface the context error as a transport failure.
		}
	}

	reply, err := s.completer.Send(ctx, text)
	if err != nil {
		log.Error("completion failed", "error", err)
		apologyMsg := gemchat.NewMessage(gemchat.AuthorAssistant, s.apology)
		s.store.Append(apologyMsg)
		return apologyMsg, err
	}

	replyMsg := gemchat.NewMessage(gemchat.AuthorAssistant, reply)
	s.store.Append(replyMsg)
	log.Info("completion received", "chars", len(reply))

	return replyMsg, nil
}

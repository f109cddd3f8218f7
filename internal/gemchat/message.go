// Package gemchat holds the conversation domain: messages and the
// in-memory conversation log.
package gemchat

import (
	"time"

	"github.com/google/uuid"
)

// Author identifies who wrote a message.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Message is a single turn in a conversation. Messages are immutable
// once created; an edit is modeled as remove + append.
type Message struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a message with a fresh ID and the current time.
func NewMessage(author Author, text string) Message {
	return Message{
		ID:        uuid.New().String(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

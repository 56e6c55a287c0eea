package models

import (
	"fmt"
	"time"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is an immutable directed note between two users. There is no
// read/unread flag and no edit or delete path.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Sender    string             `bson:"sender" json:"sender" validate:"required"`
	Recipient string             `bson:"recipient" json:"recipient" validate:"required"`
	Content   string             `bson:"content" json:"content" validate:"required"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

func (m *Message) BeforeCreate() error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	m.Timestamp = time.Now().UTC()
	return nil
}

func (m *Message) Sanitize() {
	m.Sender = helpers.StringTrim(m.Sender)
	m.Recipient = helpers.StringTrim(m.Recipient)
	m.Content = helpers.StringTrim(m.Content)
}

func (m Message) ValidateMessage() error {
	if m.Sender == "" {
		return fmt.Errorf("%w: sender is required", ErrInvalidInput)
	}
	if m.Recipient == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidInput)
	}
	if m.Content == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
	}
	return nil
}

package message

import (
	"errors"
	"strings"
	"time"

	"github.com/linkdeck/backend/internal/id"
)

// DeliveryStatus tracks the background email send for a contact message.
type DeliveryStatus string

const (
	StatusPending DeliveryStatus = "pending"
	StatusSent    DeliveryStatus = "sent"
	StatusFailed  DeliveryStatus = "failed"
)

// Message is a contact-form submission. It is persisted before the email
// send is dispatched so a delivery failure never loses the message.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	Status    DeliveryStatus
	CreatedAt time.Time
}

// New validates and creates a contact Message in the pending state.
func New(name, email, subject, body string) (*Message, error) {
	switch {
	case name == "":
		return nil, errors.New("name is required")
	case email == "" || !strings.Contains(email, "@"):
		return nil, errors.New("a valid email is required")
	case subject == "":
		return nil, errors.New("subject is required")
	case body == "":
		return nil, errors.New("body is required")
	}
	return &Message{
		ID:        id.GenerateID(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}, nil
}

package mailer

import "context"

// Email is one outbound transactional message.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers emails. Implementations may call an HTTP delivery API
// or return canned results (for tests).
type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// internal/service/delivery.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/linkdeck/backend/internal/domain/message"
	"github.com/linkdeck/backend/internal/mailer"
	"github.com/linkdeck/backend/internal/worker"
)

// MessageStore is the slice of the store the delivery service needs.
type MessageStore interface {
	UpdateMessageStatus(ctx context.Context, id string, status message.DeliveryStatus) error
}

// DeliveryService sends contact-form emails in the background. The HTTP
// handler responds to the caller immediately; delivery runs on a worker
// pool, and the outcome is written back to the message row. Failures are
// logged, never swallowed, and never crash the process.
type DeliveryService struct {
	store  MessageStore
	mailer mailer.Mailer
	logger *slog.Logger

	from      string
	recipient string

	pool    *worker.Pool[error]
	pending sync.WaitGroup // open until the status write lands
	drained chan struct{}
}

// NewDeliveryService creates the service and starts its workers and the
// result drain.
func NewDeliveryService(s MessageStore, m mailer.Mailer, logger *slog.Logger, from, recipient string, workers int) *DeliveryService {
	if workers < 1 {
		workers = 1
	}
	ds := &DeliveryService{
		store:     s,
		mailer:    m,
		logger:    logger,
		from:      from,
		recipient: recipient,
		pool:      worker.NewPool[error](workers, workers*4),
		drained:   make(chan struct{}),
	}
	go ds.drain()
	return ds
}

// Submit queues the delivery of a stored contact message and returns
// immediately.
func (ds *DeliveryService) Submit(m *message.Message) {
	email := mailer.Email{
		From:    ds.from,
		To:      ds.recipient,
		ReplyTo: m.Email,
		Subject: fmt.Sprintf("[contact] %s — %s", m.Name, m.Subject),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", m.Name, m.Email, m.Body),
	}

	ds.pending.Add(1)
	ds.pool.Submit(m.ID, func() error {
		// Deliberately not the request context: delivery outlives the
		// HTTP response. The mailer bounds each attempt with its own
		// timeout.
		return ds.mailer.Send(context.Background(), email)
	})
}

// drain records each delivery outcome on the message row.
func (ds *DeliveryService) drain() {
	defer close(ds.drained)
	for result := range ds.pool.Results() {
		status := message.StatusSent
		if result.Output != nil {
			status = message.StatusFailed
			ds.logger.Error("contact email delivery failed",
				"message_id", result.JobID, "error", result.Output)
		}
		if err := ds.store.UpdateMessageStatus(context.Background(), result.JobID, status); err != nil {
			ds.logger.Error("failed to record delivery status",
				"message_id", result.JobID, "error", err)
		}
		ds.pending.Done()
	}
}

// Wait blocks until every submitted delivery has been sent (or failed)
// and its status recorded.
func (ds *DeliveryService) Wait() {
	ds.pending.Wait()
}

// Close waits for in-flight deliveries and stops the workers.
func (ds *DeliveryService) Close() {
	ds.pending.Wait()
	ds.pool.Close()
	<-ds.drained
}

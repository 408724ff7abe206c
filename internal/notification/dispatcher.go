// Package notification delivers confirmation emails to conference
// organizers. Delivery runs on a background worker fed through a bounded
// queue so request handling never blocks on the mail transport.
package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// Sender delivers a single notification.
type Sender interface {
	Send(ctx context.Context, n model.Notification) error
}

// LogSender writes notifications to the structured log instead of a real
// mail transport.
type LogSender struct {
	logger *logger.Logger
}

// NewLogSender creates a sender that records notifications in the log.
func NewLogSender(l *logger.Logger) *LogSender {
	return &LogSender{logger: l}
}

// Send logs the notification.
func (s *LogSender) Send(_ context.Context, n model.Notification) error {
	s.logger.Info("sending notification",
		"email", n.Email,
		"subject", n.Subject,
		"body", n.Body)
	return nil
}

// Dispatcher queues notifications and delivers them on a single worker
// goroutine. Enqueue never blocks: when the queue is full the notification
// is dropped and an error returned.
type Dispatcher struct {
	sender Sender
	logger *logger.Logger

	queue chan model.Notification
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher with the given queue size and starts
// its worker.
func NewDispatcher(sender Sender, queueSize int, l *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: l,
		queue:  make(chan model.Notification, queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for n := range d.queue {
		if err := d.sender.Send(context.Background(), n); err != nil {
			d.logger.Error("failed to send notification",
				"email", n.Email,
				"subject", n.Subject,
				"error", err)
		}
	}
}

// Enqueue hands the notification to the worker. It returns an error if the
// queue is full or the dispatcher has been closed.
func (d *Dispatcher) Enqueue(ctx context.Context, n model.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return fmt.Errorf("dispatcher is closed")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case d.queue <- n:
		return nil
	default:
		return fmt.Errorf("notification queue is full")
	}
}

// Close stops accepting notifications and waits for the worker to drain
// the queue.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

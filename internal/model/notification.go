package model

import "context"

// Notification is an outbound message handed to the dispatcher.
type Notification struct {
	Email   string
	Subject string
	Body    string
}

// NotificationDispatcher enqueues notifications for asynchronous, best-effort
// delivery. Enqueue never blocks; a failed enqueue must not fail the
// operation that produced the notification.
type NotificationDispatcher interface {
	Enqueue(ctx context.Context, notification Notification) error
	Close()
}

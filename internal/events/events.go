// Package events defines the task lifecycle events published to the broker
// after successful writes. Publishing is best-effort: storage is the source
// of truth and a broker failure never fails the request.
package events

import "context"

const (
	TaskCreated = "task.created"
	TaskUpdated = "task.updated"
	TaskDeleted = "task.deleted"
)

type TaskCreatedPayload struct {
	TaskID     int    `json:"task_id"`
	Title      string `json:"title"`
	Priority   string `json:"priority"`
	AssigneeID *int   `json:"assignee_id,omitempty"`
	DueDate    string `json:"due_date,omitempty"` // YYYY-MM-DD
}

type TaskUpdatedPayload struct {
	TaskID    int  `json:"task_id"`
	Completed bool `json:"completed"`
}

type TaskDeletedPayload struct {
	TaskID int `json:"task_id"`
}

// Publisher is satisfied by the AMQP publisher and by NopPublisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close()
}

// NopPublisher drops every event. Used when no broker is configured and in
// tests.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	return nil
}

func (NopPublisher) Close() {}

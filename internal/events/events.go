package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange is the fanout exchange job mutations are announced on. Dashboards
// and other consumers bind their own queues and recompute state
// idempotently; there is no ordering guarantee across concurrent editors.
const Exchange = "job.events"

const (
	TypeJobCreated       = "job.created"
	TypeJobAssigned      = "job.assigned"
	TypeJobStatusChanged = "job.status_changed"
	TypeJobDeleted       = "job.deleted"
)

type JobEvent struct {
	Type    string `json:"type"`
	JobID   int64  `json:"jobID"`
	Date    string `json:"date"`
	Status  string `json:"status,omitempty"`
	ActorID int64  `json:"actorID"`
}

type Publisher struct {
	ch      *amqp.Channel
	timeout time.Duration
}

func NewPublisher(ch *amqp.Channel, timeout time.Duration) (*Publisher, error) {
	if err := ch.ExchangeDeclare(
		Exchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return nil, err
	}

	return &Publisher{ch: ch, timeout: timeout}, nil
}

// Publish announces a job mutation. The write it describes has already
// committed, so a failed publish is logged and dropped rather than bubbled
// up: a missed notification only delays a refresh.
func (p *Publisher) Publish(event JobEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode job event", "type", event.Type, "jobID", event.JobID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.ch.PublishWithContext(
		ctx,
		Exchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("failed to publish job event", "type", event.Type, "jobID", event.JobID, "error", err)
	}
}

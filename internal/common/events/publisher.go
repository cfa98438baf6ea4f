package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coffeeos/internal/connections/rabbitmq"
	"coffeeos/internal/domain"
)

// Publisher is the outbound event stream. Status changes are announced after
// the transaction commits; subscribers get no ordering guarantee between the
// order event and the table event of one payment.
type Publisher interface {
	Publish(ctx context.Context, branchID, kind string, payload map[string]any) error
}

type AMQPPublisher struct {
	client *rabbitmq.Client
}

func NewAMQPPublisher(client *rabbitmq.Client) *AMQPPublisher {
	return &AMQPPublisher{client: client}
}

func (p *AMQPPublisher) Publish(ctx context.Context, branchID, kind string, payload map[string]any) error {
	ev := domain.Event{
		ID:         uuid.NewString(),
		BranchID:   branchID,
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.client.Publish(ctx, rabbitmq.EventsExchange, kind, body)
}

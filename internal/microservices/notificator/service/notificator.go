package service

import (
	"context"
	"encoding/json"

	"coffeeos/internal/common/logger"
	"coffeeos/internal/connections/rabbitmq"
	"coffeeos/internal/domain"
)

// NotificatorService consumes the POS event stream. Each delivery is
// independent; no ordering is assumed between the order and table events of
// one payment.
type NotificatorService struct {
	rmq *rabbitmq.Client
	lg  *logger.Logger
}

func NewNotificatorService(rmq *rabbitmq.Client, lg *logger.Logger) *NotificatorService {
	return &NotificatorService{rmq: rmq, lg: lg}
}

func (s *NotificatorService) Run(ctx context.Context) error {
	ch := s.rmq.Channel()

	deliveries, err := ch.Consume(
		rabbitmq.NotificationsQueue,
		"notificator",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	s.lg.Info("subscribed", map[string]any{"queue": rabbitmq.NotificationsQueue})

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var ev domain.Event
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				s.lg.Error("event_decode_failed", err, map[string]any{"routing_key": d.RoutingKey})
				_ = d.Nack(false, false)
				continue
			}
			s.lg.Info("event_received", map[string]any{
				"kind":        ev.Kind,
				"branch_id":   ev.BranchID,
				"event_id":    ev.ID,
				"occurred_at": ev.OccurredAt,
				"payload":     ev.Payload,
			})
			_ = d.Ack(false)
		}
	}
}

package domain

import "time"

// Event is the envelope published to the pos.events exchange whenever an
// order or table changes status. Consumers must not assume delivery order
// across distinct subscriptions.
type Event struct {
	ID         string         `json:"id"`
	BranchID   string         `json:"branch_id"`
	Kind       string         `json:"kind"` // e.g. order.paid, table.cleaning
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

const (
	EventOrderCreated = "order.created"
	EventOrderPaid    = "order.paid"
	EventOrderStatus  = "order.status_changed"
	EventTableSeated  = "table.occupied"
	EventTableCleaned = "table.cleaning"
	EventTableFreed   = "table.available"
)

package domain

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusOpen      OrderStatus = "open"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusPaid      OrderStatus = "paid"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusRefunded  OrderStatus = "refunded"
)

// transitions lists the permitted next statuses for every non-terminal state.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusOpen, StatusCancelled},
	StatusOpen:      {StatusPreparing, StatusReady, StatusServed, StatusPaid, StatusCancelled},
	StatusPreparing: {StatusReady, StatusServed, StatusCancelled},
	StatusReady:     {StatusServed, StatusCancelled},
	StatusServed:    {StatusPaid, StatusCompleted, StatusCancelled},
}

// IsTerminal reports whether no transition may leave s.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusPaid, StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// IsValid reports whether s is a known status value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusOpen, StatusPreparing, StatusReady, StatusServed,
		StatusPaid, StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TableStatus is the occupancy state of a cafe table.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

// OrderType distinguishes how an order is fulfilled.
type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeout  OrderType = "takeout"
	OrderDelivery OrderType = "delivery"
)

func (t OrderType) IsValid() bool {
	switch t {
	case OrderDineIn, OrderTakeout, OrderDelivery:
		return true
	}
	return false
}

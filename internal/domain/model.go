package domain

import "time"

type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Branch struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID           string    `json:"id"`
	BranchID     string    `json:"branch_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"` // admin | cashier | waiter
	CreatedAt    time.Time `json:"created_at"`
}

type MenuCategory struct {
	ID        string `json:"id"`
	BranchID  string `json:"branch_id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type MenuItem struct {
	ID          string           `json:"id"`
	BranchID    string           `json:"branch_id"`
	CategoryID  string           `json:"category_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Available   bool             `json:"available"`
	Options     []MenuItemOption `json:"options,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type MenuItemOption struct {
	ID         string  `json:"id"`
	ItemID     string  `json:"item_id"`
	Name       string  `json:"name"`
	PriceDelta float64 `json:"price_delta"`
}

// CafeTable holds a non-owning reference to the order occupying it. The
// reference and the matching Order.TableID are only ever changed together
// inside one transaction.
type CafeTable struct {
	ID             string      `json:"id"`
	BranchID       string      `json:"branch_id"`
	Label          string      `json:"label"`
	Capacity       int         `json:"capacity"`
	Status         TableStatus `json:"status"`
	CurrentOrderID *string     `json:"current_order_id,omitempty"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type Order struct {
	ID            string      `json:"id"`
	BranchID      string      `json:"branch_id"`
	OrderNumber   string      `json:"order_number"`
	Status        OrderStatus `json:"status"`
	Type          OrderType   `json:"order_type"`
	TableID       *string     `json:"table_id,omitempty"`
	CreatedBy     string      `json:"created_by"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	Tax           float64     `json:"tax"`
	ServiceCharge float64     `json:"service_charge"`
	Total         float64     `json:"total"`
	Items         []OrderItem `json:"items,omitempty"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem carries a name/price snapshot taken at order time, so later menu
// edits never alter historical orders.
type OrderItem struct {
	ID         string            `json:"id"`
	OrderID    string            `json:"order_id"`
	MenuItemID string            `json:"menu_item_id"`
	Name       string            `json:"name"`
	UnitPrice  float64           `json:"unit_price"`
	Quantity   int               `json:"quantity"`
	Options    []OrderItemOption `json:"options,omitempty"`
	Subtotal   float64           `json:"subtotal"`
}

type OrderItemOption struct {
	Name       string  `json:"name"`
	PriceDelta float64 `json:"price_delta"`
}

// LineSubtotal computes quantity x (base price + option deltas).
func (i OrderItem) LineSubtotal() float64 {
	unit := i.UnitPrice
	for _, opt := range i.Options {
		unit += opt.PriceDelta
	}
	return float64(i.Quantity) * unit
}

type StatusLogEntry struct {
	ID        int64       `json:"id"`
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	ChangedBy string      `json:"changed_by"`
	ChangedAt time.Time   `json:"changed_at"`
}

type HistoricalSale struct {
	Date  string  `json:"date"` // ISO calendar date, YYYY-MM-DD
	Sales float64 `json:"sales"`
}

type PredictedSale struct {
	Date           string  `json:"date"`
	PredictedSales float64 `json:"predictedSales"`
}

// ShiftReport is the per-day sales summary for a branch.
type ShiftReport struct {
	Date          string             `json:"date"`
	OrderCount    int                `json:"order_count"`
	Gross         float64            `json:"gross"`
	Discount      float64            `json:"discount"`
	Tax           float64            `json:"tax"`
	ServiceCharge float64            `json:"service_charge"`
	Net           float64            `json:"net"`
	ByOrderType   map[string]float64 `json:"by_order_type"`
}

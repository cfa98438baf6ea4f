package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"coffeeos/internal/common/events"
	"coffeeos/internal/common/logger"
	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/pos/repository"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, branchID, createdBy string, req domain.CreateOrderRequest) (domain.Order, error)
	CompletePayment(ctx context.Context, branchID, orderID, changedBy string) (domain.PaymentResponse, error)
	UpdateStatus(ctx context.Context, branchID, orderID string, to domain.OrderStatus, changedBy string) (domain.Order, error)
	GetOrder(ctx context.Context, branchID, orderID string) (domain.Order, error)
	ListOrders(ctx context.Context, branchID string, status domain.OrderStatus, limit int) ([]domain.Order, error)
	GetStatusLog(ctx context.Context, branchID, orderID string) ([]domain.StatusLogEntry, error)
}

type OrderService struct {
	orders repository.OrderRepositoryInterface
	menu   repository.MenuRepositoryInterface
	pub    events.Publisher
	lg     *logger.Logger
}

func NewOrderService(orders repository.OrderRepositoryInterface, menu repository.MenuRepositoryInterface, pub events.Publisher, lg *logger.Logger) OrderServiceInterface {
	return &OrderService{orders: orders, menu: menu, pub: pub, lg: lg}
}

func (s *OrderService) CreateOrder(ctx context.Context, branchID, createdBy string, req domain.CreateOrderRequest) (domain.Order, error) {
	if branchID == "" {
		return domain.Order{}, domain.ErrMissingContext
	}
	if !req.OrderType.IsValid() {
		return domain.Order{}, fmt.Errorf("unknown order type %q: %w", req.OrderType, domain.ErrInvalidState)
	}
	if req.OrderType == domain.OrderDineIn && req.TableID == nil {
		return domain.Order{}, fmt.Errorf("dine-in order needs a table: %w", domain.ErrInvalidState)
	}
	if req.OrderType != domain.OrderDineIn && req.TableID != nil {
		return domain.Order{}, fmt.Errorf("%s order cannot occupy a table: %w", req.OrderType, domain.ErrInvalidState)
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("at least one item is required: %w", domain.ErrInvalidState)
	}

	ids := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("invalid quantity for item %s: %w", line.MenuItemID, domain.ErrInvalidState)
		}
		ids = append(ids, line.MenuItemID)
	}

	menuItems, err := s.menu.GetItemsByID(ctx, branchID, ids)
	if err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:        uuid.NewString(),
		BranchID:  branchID,
		Type:      req.OrderType,
		TableID:   req.TableID,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The creation-time snapshot: names, prices and option deltas are copied
	// onto the line items, so menu edits never change this order.
	var subtotal float64
	for _, line := range req.Items {
		mi, ok := menuItems[line.MenuItemID]
		if !ok {
			return domain.Order{}, fmt.Errorf("menu item %s: %w", line.MenuItemID, domain.ErrNotFound)
		}
		if !mi.Available {
			return domain.Order{}, fmt.Errorf("menu item %s is unavailable: %w", mi.Name, domain.ErrInvalidState)
		}

		item := domain.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			MenuItemID: mi.ID,
			Name:       mi.Name,
			UnitPrice:  mi.Price,
			Quantity:   line.Quantity,
		}
		for _, optID := range line.OptionIDs {
			opt, ok := findOption(mi.Options, optID)
			if !ok {
				return domain.Order{}, fmt.Errorf("option %s on item %s: %w", optID, mi.Name, domain.ErrNotFound)
			}
			item.Options = append(item.Options, domain.OrderItemOption{Name: opt.Name, PriceDelta: opt.PriceDelta})
		}
		item.Subtotal = round2(item.LineSubtotal())
		subtotal += item.Subtotal
		order.Items = append(order.Items, item)
	}

	discount := req.Discount
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}
	taxed := subtotal - discount
	order.Subtotal = round2(subtotal)
	order.Discount = round2(discount)
	order.Tax = round2(taxed * req.TaxRate)
	order.ServiceCharge = round2(taxed * req.ServiceRate)
	order.Total = round2(order.Subtotal - order.Discount + order.Tax + order.ServiceCharge)

	// Dine-in orders start open on the floor; takeout and delivery sit
	// pending until the counter confirms them.
	if req.OrderType == domain.OrderDineIn {
		order.Status = domain.StatusOpen
	} else {
		order.Status = domain.StatusPending
	}

	if err := s.orders.CreateOrderTx(ctx, &order); err != nil {
		return domain.Order{}, err
	}

	s.announce(ctx, branchID, domain.EventOrderCreated, map[string]any{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       order.Status,
		"total":        order.Total,
	})
	if order.TableID != nil {
		s.announce(ctx, branchID, domain.EventTableSeated, map[string]any{
			"table_id": *order.TableID,
			"order_id": order.ID,
		})
	}

	s.lg.Info("order_created", map[string]any{
		"order_number": order.OrderNumber, "type": order.Type, "total": order.Total,
	})
	return order, nil
}

// CompletePayment performs the open -> paid transition. The order update and
// the table release commit as one transaction; events go out only after the
// commit, so no observer ever sees a paid order with an occupied table.
func (s *OrderService) CompletePayment(ctx context.Context, branchID, orderID, changedBy string) (domain.PaymentResponse, error) {
	if branchID == "" {
		return domain.PaymentResponse{}, domain.ErrMissingContext
	}

	paidAt := time.Now().UTC()
	order, table, err := s.orders.MarkPaidTx(ctx, branchID, orderID, changedBy, paidAt)
	if err != nil {
		return domain.PaymentResponse{}, err
	}

	s.announce(ctx, branchID, domain.EventOrderPaid, map[string]any{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.Total,
		"paid_at":      paidAt,
	})
	if table != nil {
		s.announce(ctx, branchID, domain.EventTableCleaned, map[string]any{
			"table_id": table.ID,
			"label":    table.Label,
		})
	}

	s.lg.Info("payment_completed", map[string]any{
		"order_number": order.OrderNumber, "total": order.Total,
	})
	return domain.PaymentResponse{Order: order, Table: table}, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, branchID, orderID string, to domain.OrderStatus, changedBy string) (domain.Order, error) {
	if branchID == "" {
		return domain.Order{}, domain.ErrMissingContext
	}
	if !to.IsValid() {
		return domain.Order{}, fmt.Errorf("unknown status %q: %w", to, domain.ErrInvalidState)
	}

	order, table, err := s.orders.UpdateStatusTx(ctx, branchID, orderID, to, changedBy)
	if err != nil {
		return domain.Order{}, err
	}

	s.announce(ctx, branchID, domain.EventOrderStatus, map[string]any{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       order.Status,
	})
	if table != nil {
		s.announce(ctx, branchID, domain.EventTableFreed, map[string]any{
			"table_id": table.ID,
			"label":    table.Label,
		})
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, branchID, orderID string) (domain.Order, error) {
	if branchID == "" {
		return domain.Order{}, domain.ErrMissingContext
	}
	return s.orders.GetOrder(ctx, branchID, orderID)
}

func (s *OrderService) ListOrders(ctx context.Context, branchID string, status domain.OrderStatus, limit int) ([]domain.Order, error) {
	if branchID == "" {
		return nil, domain.ErrMissingContext
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.orders.ListOrders(ctx, branchID, status, limit)
}

// GetStatusLog returns the audit trail of an order, oldest entry first.
func (s *OrderService) GetStatusLog(ctx context.Context, branchID, orderID string) ([]domain.StatusLogEntry, error) {
	if branchID == "" {
		return nil, domain.ErrMissingContext
	}
	if _, err := s.orders.GetOrder(ctx, branchID, orderID); err != nil {
		return nil, err
	}
	return s.orders.GetStatusLog(ctx, orderID)
}

// announce publishes a status event. Delivery is best effort; a broker
// hiccup must not roll back an already committed transition.
func (s *OrderService) announce(ctx context.Context, branchID, kind string, payload map[string]any) {
	if err := s.pub.Publish(ctx, branchID, kind, payload); err != nil {
		s.lg.Error("event_publish_failed", err, map[string]any{"kind": kind})
	}
}

func findOption(opts []domain.MenuItemOption, id string) (domain.MenuItemOption, bool) {
	for _, opt := range opts {
		if opt.ID == id {
			return opt, true
		}
	}
	return domain.MenuItemOption{}, false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package domain

type CreateOrderItem struct {
	MenuItemID string   `json:"menu_item_id" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required,gt=0"`
	OptionIDs  []string `json:"option_ids,omitempty"`
}

type CreateOrderRequest struct {
	OrderType   OrderType         `json:"order_type" binding:"required"`
	TableID     *string           `json:"table_id,omitempty"`
	Discount    float64           `json:"discount"`
	TaxRate     float64           `json:"tax_rate"`
	ServiceRate float64           `json:"service_rate"`
	Items       []CreateOrderItem `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderResponse struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
}

type UpdateStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

type PaymentResponse struct {
	Order Order      `json:"order"`
	Table *CafeTable `json:"table,omitempty"`
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" binding:"required,oneof=admin cashier waiter"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type ForecastRequest struct {
	Days int `json:"days" binding:"required,gt=0,lte=90"`
}

type ForecastResponse struct {
	Historical []HistoricalSale `json:"historical"`
	Predicted  []PredictedSale  `json:"predicted"`
	Summary    string           `json:"summary"`
}

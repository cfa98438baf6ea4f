package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/domain"
	authmw "coffeeos/internal/microservices/auth/middleware"
	"coffeeos/internal/microservices/pos/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
}

func NewOrderHandler(s service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), c.GetString(CtxBranch), c.GetString(authmw.CtxUserID), req)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, domain.CreateOrderResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := UUIDParam(c, "orderID")
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), c.GetString(CtxBranch), orderID)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := domain.OrderStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		Problem(c, http.StatusBadRequest, "bad_request", "unknown status filter")
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), c.GetString(CtxBranch), status, atoiDefault(c.Query("limit"), 50))
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetStatusLog(c *gin.Context) {
	orderID, ok := UUIDParam(c, "orderID")
	if !ok {
		return
	}
	log, err := h.service.GetStatusLog(c.Request.Context(), c.GetString(CtxBranch), orderID)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"log": log})
}

// CompletePayment is the "Proceed to Payment" action: one atomic transition
// that marks the order paid and sends its table to cleaning.
func (h *OrderHandler) CompletePayment(c *gin.Context) {
	orderID, ok := UUIDParam(c, "orderID")
	if !ok {
		return
	}
	resp, err := h.service.CompletePayment(c.Request.Context(), c.GetString(CtxBranch), orderID, c.GetString(authmw.CtxUserID))
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := UUIDParam(c, "orderID")
	if !ok {
		return
	}
	var req domain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), c.GetString(CtxBranch), orderID, req.Status, c.GetString(authmw.CtxUserID))
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

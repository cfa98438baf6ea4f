package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/pos/service"
)

type MenuHandler struct {
	service service.MenuServiceInterface
}

func NewMenuHandler(s service.MenuServiceInterface) *MenuHandler {
	return &MenuHandler{service: s}
}

func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context(), c.GetString(CtxBranch))
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type createCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), c.GetString(CtxBranch), req.Name, req.SortOrder)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context(), c.GetString(CtxBranch))
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type createItemRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Options     []struct {
		Name       string  `json:"name" binding:"required"`
		PriceDelta float64 `json:"price_delta"`
	} `json:"options,omitempty"`
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	item := domain.MenuItem{
		BranchID:    c.GetString(CtxBranch),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	for _, opt := range req.Options {
		item.Options = append(item.Options, domain.MenuItemOption{Name: opt.Name, PriceDelta: opt.PriceDelta})
	}

	created, err := h.service.CreateItem(c.Request.Context(), item)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type availabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

func (h *MenuHandler) SetItemAvailability(c *gin.Context) {
	itemID, ok := UUIDParam(c, "itemID")
	if !ok {
		return
	}
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	if err := h.service.SetItemAvailability(c.Request.Context(), c.GetString(CtxBranch), itemID, *req.Available); err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

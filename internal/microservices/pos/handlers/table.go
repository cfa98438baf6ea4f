package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/microservices/pos/service"
)

type TableHandler struct {
	service service.TableServiceInterface
}

func NewTableHandler(s service.TableServiceInterface) *TableHandler {
	return &TableHandler{service: s}
}

type createTableRequest struct {
	Label    string `json:"label" binding:"required"`
	Capacity int    `json:"capacity"`
}

func (h *TableHandler) CreateTable(c *gin.Context) {
	var req createTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	t, err := h.service.CreateTable(c.Request.Context(), c.GetString(CtxBranch), req.Label, req.Capacity)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.service.ListTables(c.Request.Context(), c.GetString(CtxBranch))
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *TableHandler) GetTable(c *gin.Context) {
	tableID, ok := UUIDParam(c, "tableID")
	if !ok {
		return
	}
	t, err := h.service.GetTable(c.Request.Context(), c.GetString(CtxBranch), tableID)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TableHandler) FinishCleaning(c *gin.Context) {
	tableID, ok := UUIDParam(c, "tableID")
	if !ok {
		return
	}
	t, err := h.service.FinishCleaning(c.Request.Context(), c.GetString(CtxBranch), tableID)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return n
}

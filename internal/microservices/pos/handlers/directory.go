package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/microservices/pos/service"
)

type DirectoryHandler struct {
	service service.DirectoryServiceInterface
}

func NewDirectoryHandler(s service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

func (h *DirectoryHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.ListTenants(c.Request.Context())
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenants": tenants})
}

func (h *DirectoryHandler) ListBranches(c *gin.Context) {
	tenantID, ok := UUIDParam(c, "tenantID")
	if !ok {
		return
	}
	branches, err := h.service.ListBranches(c.Request.Context(), tenantID)
	if err != nil {
		ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	poshandlers "coffeeos/internal/microservices/pos/handlers"
	"coffeeos/internal/microservices/reports/service"
)

type ReportHandler struct {
	service service.ReportServiceInterface
}

func NewReportHandler(s service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) DailySummaries(c *gin.Context) {
	reports, err := h.service.DailySummaries(c.Request.Context(), c.GetString(poshandlers.CtxBranch),
		c.Query("from"), c.Query("to"))
	if err != nil {
		poshandlers.ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/forecast/service"
	poshandlers "coffeeos/internal/microservices/pos/handlers"
)

type ForecastHandler struct {
	service service.ForecastServiceInterface
}

func NewForecastHandler(s service.ForecastServiceInterface) *ForecastHandler {
	return &ForecastHandler{service: s}
}

func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req domain.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		poshandlers.Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	resp, err := h.service.Forecast(c.Request.Context(), c.GetString(poshandlers.CtxBranch), req.Days)
	if err != nil {
		poshandlers.ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

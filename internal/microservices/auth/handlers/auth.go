package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/auth/service"
	poshandlers "coffeeos/internal/microservices/pos/handlers"
)

type AuthHandler struct {
	service service.AuthServiceInterface
}

func NewAuthHandler(s service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		poshandlers.Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), c.GetString(poshandlers.CtxBranch), req)
	if err != nil {
		poshandlers.ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		poshandlers.Problem(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), c.GetString(poshandlers.CtxBranch), req)
	if err != nil {
		poshandlers.ProblemFromErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeos/internal/domain"
)

// Problem writes the problem-JSON error shape used across the API.
func Problem(c *gin.Context, code int, typ, detail string) {
	c.AbortWithStatusJSON(code, gin.H{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// ProblemFromErr maps the domain error taxonomy onto HTTP statuses. Callers
// of a commit_failed response may retry; invalid_state callers must re-read
// state first.
func ProblemFromErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidState):
		Problem(c, http.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, domain.ErrMissingContext):
		Problem(c, http.StatusBadRequest, "missing_context", err.Error())
	case errors.Is(err, domain.ErrCommitFailed):
		Problem(c, http.StatusServiceUnavailable, "commit_failed", err.Error())
	case errors.Is(err, domain.ErrMalformedForecast):
		Problem(c, http.StatusBadGateway, "malformed_forecast", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Problem(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		Problem(c, http.StatusUnauthorized, "unauthorized", "invalid credentials")
	default:
		Problem(c, http.StatusInternalServerError, "internal", err.Error())
	}
}

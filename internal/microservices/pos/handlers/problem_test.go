package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"coffeeos/internal/domain"
)

func problemStatus(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	ProblemFromErr(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestProblemFromErr(t *testing.T) {
	cases := []struct {
		err    error
		status int
		typ    string
	}{
		{domain.ErrInvalidState, http.StatusConflict, "invalid_state"},
		{domain.ErrMissingContext, http.StatusBadRequest, "missing_context"},
		{domain.ErrCommitFailed, http.StatusServiceUnavailable, "commit_failed"},
		{domain.ErrMalformedForecast, http.StatusBadGateway, "malformed_forecast"},
		{domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		code, body := problemStatus(t, tc.err)
		require.Equal(t, tc.status, code, tc.typ)
		require.Equal(t, tc.typ, body["type"])
		require.Equal(t, float64(tc.status), body["status"])
	}
}

func TestWrappedErrorsStillMap(t *testing.T) {
	// Repositories wrap sentinels with context; the mapping must see through.
	err := fmt.Errorf("order ORD-42 is served, not open: %w", domain.ErrInvalidState)
	code, body := problemStatus(t, err)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "invalid_state", body["type"])
	require.Contains(t, body["detail"], "ORD-42")
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/orders/:orderID", func(c *gin.Context) {
		id, ok := UUIDParam(c, "orderID")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	// A path segment that cannot be a stored id is a 404, not a database
	// cast failure surfacing as 500.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "not_found", body["type"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/6f1c2a34-9d5e-4b7f-8a10-2c3d4e5f6a7b", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

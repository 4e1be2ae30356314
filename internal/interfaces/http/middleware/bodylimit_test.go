package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/estateops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyLimitRouter(maxBytes int64) *gin.Engine {
	router := gin.New()
	router.Use(BodyLimit(maxBytes))
	router.POST("/import", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestBodyLimitAllowsSmallBody(t *testing.T) {
	router := bodyLimitRouter(64)

	req := httptest.NewRequest("POST", "/import", strings.NewReader(`{"safes":[]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodyLimitRejectsOversizedBody(t *testing.T) {
	router := bodyLimitRouter(16)

	req := httptest.NewRequest("POST", "/import", strings.NewReader(strings.Repeat("x", 64)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "REQUEST_TOO_LARGE", resp.Error.Code)
}

func TestBodyLimitIgnoresBodylessRequests(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(16))
	router.GET("/safes", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/safes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

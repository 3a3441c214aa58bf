package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_TraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewRequestLogger().Handler())

	var traceID string
	router.GET("/ping", func(c *gin.Context) {
		traceID = c.GetString("trace_id")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, traceID, "каждый запрос получает trace_id")
}

func TestRequestLogger_UniquePerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewRequestLogger().Handler())

	var ids []string
	router.GET("/ping", func(c *gin.Context) {
		ids = append(ids, c.GetString("trace_id"))
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	}

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1], "trace_id не должен повторяться")
}

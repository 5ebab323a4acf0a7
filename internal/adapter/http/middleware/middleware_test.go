package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskmaster/pkg/metrics"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return router
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	router := newTestRouter(RequestID())

	req, _ := http.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoesClientValue(t *testing.T) {
	router := newTestRouter(RequestID())

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	m := metrics.NewAppMetrics()
	router := newTestRouter(Metrics(m))

	req, _ := http.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	exposition := httptest.NewRecorder()
	metricsReq, _ := http.NewRequest("GET", "/metrics", nil)

	m.Handler().ServeHTTP(exposition, metricsReq)

	assert.Contains(t, exposition.Body.String(), `http_requests_total{method="GET",path="/ping",status="200"} 1`)
}

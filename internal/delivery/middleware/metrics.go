package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"arches/internal/infra/metrics"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route pattern.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler and error handler ran.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		// The route pattern keeps label cardinality bounded.
		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}

		m.metrics.ObserveHTTPRequest(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
			time.Since(start),
		)

		return nil
	}
}

package app

import (
	"context"
	"time"

	"skillswap/pkg/logger"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with a snowflake id, reusing one sent by
// the client. The id is echoed in the response and carried in the context
// so every log line of the request includes it.
func requestID(node *snowflake.Node) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = node.Generate().String()
		}

		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// accessLog records one line and one OTel counter increment per request.
func accessLog(log logger.Logger) gin.HandlerFunc {
	meter := otel.Meter("skillswap/http")
	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("HTTP requests by route and status."),
	)
	if err != nil {
		log.Warn(context.Background(), "failed to create request counter",
			logger.Field{Key: "error", Value: err},
		)
	}
	latency, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request latency."),
		metric.WithUnit("s"),
	)
	if err != nil {
		log.Warn(context.Background(), "failed to create latency histogram",
			logger.Field{Key: "error", Value: err},
		)
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		attrs := metric.WithAttributes(
			attribute.String("http.route", route),
			attribute.String("http.method", c.Request.Method),
			attribute.Int("http.status_code", status),
		)
		if requests != nil {
			requests.Add(c.Request.Context(), 1, attrs)
		}
		if latency != nil {
			latency.Record(c.Request.Context(), elapsed.Seconds(), attrs)
		}

		log.Info(c.Request.Context(), "http request",
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "route", Value: route},
			logger.Field{Key: "status", Value: status},
			logger.Field{Key: "duration", Value: elapsed.String()},
		)
	}
}

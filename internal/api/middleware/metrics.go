package middleware

import (
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/metrics"
)

// Metrics records HTTP metrics for each request and logs its completion.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reg.HTTPRequestsInFlight.Inc()
		defer reg.HTTPRequestsInFlight.Dec()

		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := ctx.Writer.Status()
		duration := time.Since(start)

		reg.HTTPRequestsTotal.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(status)).Inc()
		reg.HTTPRequestDuration.WithLabelValues(route, ctx.Request.Method).Observe(duration.Seconds())

		zap.L().Info("HTTP request completed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("route", route),
			zap.Int("status_code", status),
			zap.Duration("latency", duration),
			zap.String("client_ip", ctx.ClientIP()),
		)
	}
}

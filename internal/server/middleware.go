package server

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one structured line per request and feeds httpRequests.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		log.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client", c.ClientIP()),
		)
	}
}

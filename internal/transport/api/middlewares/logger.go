package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Ошибки из контекста gin (включая приватные) попадают только в лог.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "http",
		"module":    "api",
	})

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		reqEntry := entry.WithFields(logrus.Fields{
			"status":   status,
			"method":   c.Request.Method,
			"path":     path,
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
			"size":     c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			reqEntry = reqEntry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			reqEntry.Error("request failed")
		case status >= http.StatusBadRequest:
			reqEntry.Warn("request rejected")
		default:
			reqEntry.Info("request")
		}
	}
}

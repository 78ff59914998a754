package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

// ContextRequestIDKey — ключ request id в gin.Context.
const ContextRequestIDKey = "requestID"

// RequestLogger присваивает каждому запросу id и пишет структурированную
// запись о результате обработки.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(ContextRequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		if logger.Log == nil {
			return
		}

		entry := logger.Log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		})

		if c.Writer.Status() >= 500 {
			entry.Error("запрос завершился ошибкой")
		} else {
			entry.Info("запрос обработан")
		}
	}
}

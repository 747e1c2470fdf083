package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/listing-reviews/internal/logger"
	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestID берёт X-Request-ID из запроса или выдаёт новый и возвращает его в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog пишет одну запись на запрос. Ошибки вендора и внутренние ошибки
// логируются на уровне error, остальные прикреплённые ошибки на debug.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.Get()
		fields := logrus.Fields{
			"request_id": c.GetString(ContextRequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		}

		if len(c.Errors) == 0 {
			log.WithFields(fields).Info("http: запрос обработан")
			return
		}

		err := c.Errors.Last().Err
		entry := log.WithFields(fields).WithError(err)
		switch apperror.CodeOf(err) {
		case apperror.ErrCodeInternal, apperror.ErrCodeUpstream:
			entry.Error("http: ошибка обработки запроса")
		default:
			entry.Debug("http: запрос отклонён")
		}
	}
}

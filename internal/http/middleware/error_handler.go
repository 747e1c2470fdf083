package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/listing-reviews/internal/interface/http/response"
	"github.com/ignatzorin/listing-reviews/internal/logger"
	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
)

// ErrorHandler отвечает конвертом, если обработчик прикрепил ошибку через c.Error,
// но сам ответ не записал.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		c.Errors = c.Errors[:len(c.Errors)-1]
		response.Error(c, err)
	}
}

// Recovery превращает панику в InternalServerError; текст паники уходит только в data.error.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				cause := fmt.Errorf("panic: %v", rec)
				logger.Get().WithFields(logrus.Fields{
					"request_id": c.GetString(ContextRequestIDKey),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				}).WithError(cause).Error("http: паника при обработке запроса")

				response.Abort(c, apperror.Wrap(cause, apperror.ErrCodeInternal, "Internal server error").
					WithDetails(gin.H{"error": cause.Error()}))
			}
		}()
		c.Next()
	}
}

// NotFound отвечает на неизвестные маршруты.
func NotFound(c *gin.Context) {
	response.Error(c, apperror.ErrRouteNotFound)
}

// MethodNotAllowed отвечает, если маршрут есть, а метода нет.
func MethodNotAllowed(c *gin.Context) {
	response.MethodNotAllowed(c)
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/listing-reviews/internal/interface/http/response"
	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
)

// ContextAdminKey - ключ gin.Context с признаком привилегированного вызывающего.
const ContextAdminKey = "isAdmin"

// AdminChecker проверяет токен администратора.
type AdminChecker interface {
	IsAdmin(token string) bool
}

// Privilege определяет права вызывающего один раз на запрос.
// Отсутствие или неверный токен не ошибка: запрос просто становится публичным.
func Privilege(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c.GetHeader("Authorization"))
		c.Set(ContextAdminKey, ok && checker.IsAdmin(token))
		c.Next()
	}
}

// RequireAdmin пропускает только привилегированных вызывающих.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Abort(c, apperror.ErrAdminRequired)
			return
		}
		c.Next()
	}
}

// IsAdmin читает признак, выставленный Privilege.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextAdminKey)
}

func bearer(header string) (string, bool) {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

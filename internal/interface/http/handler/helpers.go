package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/listing-reviews/internal/http/middleware"
	"github.com/ignatzorin/listing-reviews/internal/interface/http/dto"
)

func isAdmin(c *gin.Context) bool {
	return middleware.IsAdmin(c)
}

// statusParam берёт статус из query, а при его отсутствии из JSON-тела.
// Ошибка разбора тела не прерывает запрос: пустой статус отклонит проверка.
func statusParam(c *gin.Context) string {
	if status := c.Query("status"); status != "" {
		return status
	}
	if c.Request.ContentLength == 0 {
		return ""
	}
	var req dto.PatchReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.Status
}

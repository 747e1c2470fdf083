package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
)

const (
	NameSuccess          = "Success"
	NameMethodNotAllowed = "MethodNotAllowed"

	msgInternal = "Internal server error"
)

// Envelope - единый формат любого ответа API, успешного или нет.
type Envelope struct {
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Collection - data для списков и одиночных сущностей.
type Collection struct {
	Result interface{} `json:"result"`
	Count  int         `json:"count"`
	Offset int         `json:"offset"`
}

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Name:    NameSuccess,
		Message: message,
		Data:    data,
	})
}

// Page отвечает коллекцией с общим числом записей и смещением.
func Page(c *gin.Context, message string, result interface{}, count, offset int) {
	Success(c, message, Collection{Result: result, Count: count, Offset: offset})
}

// Single отвечает одной сущностью в том же формате, что и коллекция.
func Single(c *gin.Context, message string, result interface{}) {
	Page(c, message, result, 1, 0)
}

// Error пишет ошибку в конверт и прикрепляет её к контексту для журнала запросов.
// Неизвестные ошибки отдаются как InternalServerError без подробностей в message.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Envelope{
			Name:    string(appErr.Code),
			Message: appErr.Message,
			Data:    appErr.Details,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Envelope{
		Name:    string(apperror.ErrCodeInternal),
		Message: msgInternal,
		Data:    gin.H{"error": err.Error()},
	})
}

// Abort пишет ошибку и прерывает цепочку обработчиков.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, Envelope{
		Name:    NameMethodNotAllowed,
		Message: "Method not allowed.",
	})
}

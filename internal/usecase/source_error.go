package usecase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
)

// FromSource переводит ошибку источника данных в AppError.
// Ошибка вендора отдаётся с общим сообщением, текст непредвиденной ошибки
// попадает только в data.error.
func FromSource(err error, notFound *apperror.AppError, failure string) error {
	var appErr *apperror.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrUpstream):
		return apperror.Wrap(err, apperror.ErrCodeUpstream, failure)
	default:
		return apperror.Wrap(err, apperror.ErrCodeInternal, failure).
			WithDetails(map[string]string{"error": err.Error()})
	}
}

// ParseID разбирает идентификатор из пути: только положительные целые.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

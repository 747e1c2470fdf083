package review

import (
	"context"
	"errors"
	"net/url"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/domain/reviewquery"
	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
	"github.com/ignatzorin/listing-reviews/internal/usecase"
	"github.com/ignatzorin/listing-reviews/internal/validation"
)

const (
	msgFetchReviewsFailed = "Failed to fetch reviews"
	msgFetchReviewFailed  = "Failed to fetch review"
	msgUpdateFailed       = "Failed to update review status"
)

type ListReviewsUseCase struct {
	source repository.ReviewSource
}

func NewListReviewsUseCase(source repository.ReviewSource) *ListReviewsUseCase {
	return &ListReviewsUseCase{source: source}
}

// Execute разбирает параметры и запрашивает страницу отзывов.
// Невалидные параметры до источника не доходят.
func (uc *ListReviewsUseCase) Execute(ctx context.Context, values url.Values, privileged bool) (reviewquery.Page, error) {
	q, err := reviewquery.Parse(values)
	if err != nil {
		return reviewquery.Page{}, validationError(err)
	}

	page, err := uc.source.FetchAll(ctx, q, privileged)
	if err != nil {
		return reviewquery.Page{}, usecase.FromSource(err, apperror.ErrReviewNotFound, msgFetchReviewsFailed)
	}
	return page, nil
}

type GetReviewUseCase struct {
	source repository.ReviewSource
}

func NewGetReviewUseCase(source repository.ReviewSource) *GetReviewUseCase {
	return &GetReviewUseCase{source: source}
}

// Execute возвращает отзыв; неопубликованный отзыв для публики не существует.
func (uc *GetReviewUseCase) Execute(ctx context.Context, rawID string, privileged bool) (*entity.Review, error) {
	id, ok := usecase.ParseID(rawID)
	if !ok {
		return nil, apperror.ErrInvalidReviewID
	}

	r, err := uc.source.FetchOne(ctx, id, privileged)
	if err != nil {
		return nil, usecase.FromSource(err, apperror.ErrReviewNotFound, msgFetchReviewFailed)
	}
	return r, nil
}

// statusInput - новый статус отзыва в виде, понятном валидатору.
type statusInput struct {
	Status string `json:"status" validate:"required,review_status"`
}

type UpdateReviewStatusUseCase struct {
	source repository.ReviewSource
}

func NewUpdateReviewStatusUseCase(source repository.ReviewSource) *UpdateReviewStatusUseCase {
	return &UpdateReviewStatusUseCase{source: source}
}

// Execute меняет видимость отзыва. Проверки идут строго по порядку:
// права, id, статус, и только потом обращение к источнику.
func (uc *UpdateReviewStatusUseCase) Execute(ctx context.Context, rawID, rawStatus string, privileged bool) (*entity.Review, error) {
	if !privileged {
		return nil, apperror.ErrAdminRequired
	}

	id, ok := usecase.ParseID(rawID)
	if !ok {
		return nil, apperror.ErrInvalidReviewID
	}

	if err := validation.Struct(statusInput{Status: rawStatus}, nil); err != nil {
		return nil, apperror.ErrInvalidStatus
	}

	r, err := uc.source.PatchStatus(ctx, id, valueobject.ReviewStatus(rawStatus))
	if err != nil {
		return nil, usecase.FromSource(err, apperror.ErrReviewNotPatched, msgUpdateFailed)
	}
	return r, nil
}

func validationError(err error) error {
	var errs validation.Errors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return apperror.Wrap(err, apperror.ErrCodeInternal, msgFetchReviewsFailed).
			WithDetails(map[string]string{"error": err.Error()})
	}
	return apperror.New(apperror.ErrCodeValidation, errs.First().Message).
		WithDetails(map[string]interface{}{"errors": errs})
}

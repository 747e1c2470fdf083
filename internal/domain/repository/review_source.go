package repository

import (
	"context"
	"errors"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/reviewquery"
	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

var (
	// ErrNotFound - запись не существует или не видна вызывающему.
	ErrNotFound = errors.New("not found")
	// ErrUpstream - источник данных ответил ошибкой.
	ErrUpstream = errors.New("upstream failure")
)

// ReviewSource - источник отзывов: фикстуры в памяти или API вендора.
type ReviewSource interface {
	FetchAll(ctx context.Context, q reviewquery.Query, privileged bool) (reviewquery.Page, error)
	FetchOne(ctx context.Context, id int, privileged bool) (*entity.Review, error)
	PatchStatus(ctx context.Context, id int, status valueobject.ReviewStatus) (*entity.Review, error)
}

// ListingSource - справочник объектов размещения.
type ListingSource interface {
	FetchAll(ctx context.Context) ([]entity.Listing, error)
	FetchOne(ctx context.Context, id int) (*entity.Listing, error)
}

// Pinger проверяет доступность источника для /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

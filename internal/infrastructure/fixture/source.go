package fixture

import (
	"context"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/domain/reviewquery"
	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

// ReviewSource отдаёт отзывы из Store, выполняя запрос в памяти.
type ReviewSource struct {
	store *Store
}

func NewReviewSource(store *Store) *ReviewSource {
	return &ReviewSource{store: store}
}

func (s *ReviewSource) FetchAll(ctx context.Context, q reviewquery.Query, privileged bool) (reviewquery.Page, error) {
	if err := ctx.Err(); err != nil {
		return reviewquery.Page{}, err
	}
	return reviewquery.Apply(s.store.Reviews(), q, privileged), nil
}

// FetchOne для непривилегированного вызывающего не отдаёт неопубликованные отзывы.
func (s *ReviewSource) FetchOne(ctx context.Context, id int, privileged bool) (*entity.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, ok := s.store.Review(id)
	if !ok || !r.IsVisibleTo(privileged) {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (s *ReviewSource) PatchStatus(ctx context.Context, id int, status valueobject.ReviewStatus) (*entity.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, ok := s.store.SetStatus(id, status)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (s *ReviewSource) Ping(ctx context.Context) error {
	return ctx.Err()
}

// ListingSource отдаёт объекты из Store.
type ListingSource struct {
	store *Store
}

func NewListingSource(store *Store) *ListingSource {
	return &ListingSource{store: store}
}

func (s *ListingSource) FetchAll(ctx context.Context) ([]entity.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Listings(), nil
}

func (s *ListingSource) FetchOne(ctx context.Context, id int) (*entity.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, ok := s.store.Listing(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

package hostaway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/domain/reviewquery"
	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

// ReviewSource - отзывы из API вендора.
type ReviewSource struct {
	client *Client
}

func NewReviewSource(client *Client) *ReviewSource {
	return &ReviewSource{client: client}
}

// FetchAll передаёт запрос вендору; публичным вызывающим добавляется status=published.
func (s *ReviewSource) FetchAll(ctx context.Context, q reviewquery.Query, privileged bool) (reviewquery.Page, error) {
	values := q.Values()
	if !privileged {
		values.Set("status", string(valueobject.ReviewStatusPublished))
	}

	env, err := s.client.get(ctx, "/reviews", values)
	if err != nil {
		return reviewquery.Page{}, err
	}

	page := reviewquery.Page{Result: []entity.Review{}, Count: env.Count, Offset: env.Offset}
	if env.hasResult() {
		if err := decodeResult(env, &page.Result); err != nil {
			return reviewquery.Page{}, err
		}
	}
	return page, nil
}

// FetchOne не отдаёт неопубликованный отзыв публичному вызывающему,
// даже если вендор его вернул.
func (s *ReviewSource) FetchOne(ctx context.Context, id int, privileged bool) (*entity.Review, error) {
	env, err := s.client.get(ctx, "/reviews/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	var r entity.Review
	if err := decodeResult(env, &r); err != nil {
		return nil, err
	}
	if !r.IsVisibleTo(privileged) {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

// PatchStatus: неуспешный статус конверта означает, что отзыв не найден или не обновлён.
func (s *ReviewSource) PatchStatus(ctx context.Context, id int, status valueobject.ReviewStatus) (*entity.Review, error) {
	env, err := s.client.do(ctx, http.MethodPatch, "/reviews/"+strconv.Itoa(id), url.Values{"status": {string(status)}})
	if err != nil {
		return nil, err
	}
	if env.Status != statusSuccess {
		return nil, fmt.Errorf("hostaway: статус %q: %w", env.Status, repository.ErrNotFound)
	}
	var r entity.Review
	if err := decodeResult(env, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReviewSource) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// ListingSource - объекты размещения из API вендора.
type ListingSource struct {
	client *Client
}

func NewListingSource(client *Client) *ListingSource {
	return &ListingSource{client: client}
}

func (s *ListingSource) FetchAll(ctx context.Context) ([]entity.Listing, error) {
	env, err := s.client.get(ctx, "/listings", nil)
	if err != nil {
		return nil, err
	}
	listings := []entity.Listing{}
	if err := decodeResult(env, &listings); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return listings, nil
}

func (s *ListingSource) FetchOne(ctx context.Context, id int) (*entity.Listing, error) {
	env, err := s.client.get(ctx, "/listings/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	var l entity.Listing
	if err := decodeResult(env, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

package reviewquery

import (
	"net/url"
	"strconv"
	"time"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

// Query - проверенный запрос к отзывам. MinRating уже в шкале 0–10.
type Query struct {
	ListingID  *int
	Type       valueobject.ReviewType
	Channels   []valueobject.Channel
	From       *time.Time
	To         *time.Time
	MinRating  *int
	Categories []valueobject.Category
	SortBy     valueobject.SortBy
	SortOrder  valueobject.SortOrder
	Limit      *int
	Offset     int
}

// Values кодирует запрос обратно в параметры для вендора.
// Списки передаются повторяющимися ключами, даты в RFC3339.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.ListingID != nil {
		v.Set("listingId", strconv.Itoa(*q.ListingID))
	}
	if q.Type != "" {
		v.Set("type", string(q.Type))
	}
	for _, c := range q.Channels {
		v.Add("channels", strconv.Itoa(int(c)))
	}
	if q.From != nil {
		v.Set("from", q.From.UTC().Format(time.RFC3339))
	}
	if q.To != nil {
		v.Set("to", q.To.UTC().Format(time.RFC3339))
	}
	if q.MinRating != nil {
		v.Set("minRating", strconv.Itoa(*q.MinRating))
	}
	for _, c := range q.Categories {
		v.Add("categories", string(c))
	}
	if q.SortBy != "" {
		v.Set("sortBy", string(q.SortBy))
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", string(q.SortOrder))
	}
	if q.Limit != nil {
		v.Set("limit", strconv.Itoa(*q.Limit))
	}
	v.Set("offset", strconv.Itoa(q.Offset))
	return v
}

// Page - страница результата и число отзывов, прошедших фильтр.
type Page struct {
	Result []entity.Review `json:"result"`
	Count  int             `json:"count"`
	Offset int             `json:"offset"`
}

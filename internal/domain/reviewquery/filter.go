package reviewquery

import (
	"slices"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
)

// Matches решает, подходит ли отзыв под запрос. Все условия должны выполняться.
// Отзыв с неразбираемой датой не проходит фильтры from/to, но ошибки не возникает.
func Matches(r entity.Review, q Query, privileged bool) bool {
	if !r.IsVisibleTo(privileged) {
		return false
	}
	if q.ListingID != nil && r.ListingID != *q.ListingID {
		return false
	}
	if q.Type != "" && r.Type != q.Type {
		return false
	}
	if len(q.Channels) > 0 && !slices.Contains(q.Channels, r.ChannelID) {
		return false
	}
	if q.MinRating != nil && r.Rating < *q.MinRating {
		return false
	}
	if len(q.Categories) > 0 && !r.HasCategory(q.Categories) {
		return false
	}
	if q.From != nil || q.To != nil {
		ts, ok := r.SubmittedTime()
		if !ok {
			return false
		}
		if q.From != nil && ts.Before(*q.From) {
			return false
		}
		if q.To != nil && ts.After(*q.To) {
			return false
		}
	}
	return true
}

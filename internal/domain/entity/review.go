package entity

import (
	"strings"
	"time"

	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

// SubmittedAtLayout - формат времени, в котором вендор отдаёт submittedAt.
const SubmittedAtLayout = "2006-01-02 15:04:05"

// CategoryRating - оценка по отдельной категории.
type CategoryRating struct {
	Category valueobject.Category `json:"category"`
	Rating   int                  `json:"rating"`
}

// Review - отзыв в том виде, в котором его отдаёт вендор.
// Меняется только Status, и только через патч администратора.
type Review struct {
	ID             int                      `json:"id"`
	ListingID      int                      `json:"listingMapId"`
	ListingName    string                   `json:"listingName,omitempty"`
	Type           valueobject.ReviewType   `json:"type"`
	Status         valueobject.ReviewStatus `json:"status"`
	ChannelID      valueobject.Channel      `json:"channelId"`
	Rating         int                      `json:"rating"`
	PublicReview   *string                  `json:"publicReview,omitempty"`
	CategoryRating []CategoryRating         `json:"reviewCategory,omitempty"`
	SubmittedAt    string                   `json:"submittedAt"`
	GuestName      string                   `json:"guestName"`
}

// SubmittedTime разбирает SubmittedAt. ok=false, если строка не распознана.
func (r *Review) SubmittedTime() (time.Time, bool) {
	raw := strings.TrimSpace(r.SubmittedAt)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{SubmittedAtLayout, time.RFC3339Nano, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// HasCategory проверяет, есть ли у отзыва оценка хотя бы по одной из категорий.
func (r *Review) HasCategory(categories []valueobject.Category) bool {
	for _, cr := range r.CategoryRating {
		for _, c := range categories {
			if cr.Category == c {
				return true
			}
		}
	}
	return false
}

// IsVisibleTo решает, видит ли отзыв вызывающий.
func (r *Review) IsVisibleTo(privileged bool) bool {
	return privileged || r.Status.IsPublic()
}

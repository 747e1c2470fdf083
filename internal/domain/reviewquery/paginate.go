package reviewquery

import "github.com/ignatzorin/listing-reviews/internal/domain/entity"

// Paginate вырезает страницу. limit == nil означает «до конца».
// Смещение за пределами набора даёт пустую страницу, а не ошибку.
func Paginate(reviews []entity.Review, offset int, limit *int) []entity.Review {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(reviews) {
		return []entity.Review{}
	}
	end := len(reviews)
	if limit != nil && *limit >= 0 && *limit < end-offset {
		end = offset + *limit
	}
	return reviews[offset:end]
}

package reviewquery

import (
	"cmp"
	"slices"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

// Sort возвращает отсортированную копию. Сортировка стабильная: при равных
// ключах сохраняется исходный порядок. Неразобранная дата считается нулевой.
func Sort(reviews []entity.Review, by valueobject.SortBy, order valueobject.SortOrder) []entity.Review {
	out := slices.Clone(reviews)

	compare := func(a, b *entity.Review) int {
		if by == valueobject.SortByRating {
			return cmp.Compare(a.Rating, b.Rating)
		}
		ta, _ := a.SubmittedTime()
		tb, _ := b.SubmittedTime()
		return ta.Compare(tb)
	}

	slices.SortStableFunc(out, func(a, b entity.Review) int {
		c := compare(&a, &b)
		if order != valueobject.SortOrderAsc {
			c = -c
		}
		return c
	})
	return out
}

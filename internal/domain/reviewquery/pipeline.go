package reviewquery

import (
	"net/url"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
)

// Apply выполняет запрос над коллекцией: сортировка всего набора, затем фильтр,
// затем пагинация. Count - размер отфильтрованного набора до пагинации.
func Apply(reviews []entity.Review, q Query, privileged bool) Page {
	sorted := Sort(reviews, q.SortBy, q.SortOrder)

	filtered := make([]entity.Review, 0, len(sorted))
	for _, r := range sorted {
		if Matches(r, q, privileged) {
			filtered = append(filtered, r)
		}
	}

	return Page{
		Result: Paginate(filtered, q.Offset, q.Limit),
		Count:  len(filtered),
		Offset: q.Offset,
	}
}

// Run разбирает параметры и выполняет запрос над коллекцией в памяти.
// Это чистая точка входа конвейера без источника данных: use case разбирает
// параметры отдельно, потому что источник может выполнить запрос сам (API вендора).
// При невалидных параметрах коллекция не трогается.
func Run(reviews []entity.Review, values url.Values, privileged bool) (Page, error) {
	q, err := Parse(values)
	if err != nil {
		return Page{}, err
	}
	return Apply(reviews, q, privileged), nil
}

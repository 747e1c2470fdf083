package fixture

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

//go:embed data/*.json
var seed embed.FS

// Store - таблица отзывов и объектов в памяти процесса.
// Чтение идёт под RLock, смена статуса под эксклюзивной блокировкой,
// поэтому одновременные патчи одной записи не теряются.
type Store struct {
	mu       sync.RWMutex
	reviews  []entity.Review
	index    map[int]int
	listings []entity.Listing
}

// NewStore создаёт хранилище из переданных записей. Записи копируются.
func NewStore(reviews []entity.Review, listings []entity.Listing) *Store {
	s := &Store{
		reviews:  make([]entity.Review, 0, len(reviews)),
		index:    make(map[int]int, len(reviews)),
		listings: slices.Clone(listings),
	}
	for _, r := range reviews {
		s.index[r.ID] = len(s.reviews)
		s.reviews = append(s.reviews, cloneReview(r))
	}
	return s
}

// NewSeededStore загружает встроенные фикстуры.
func NewSeededStore() (*Store, error) {
	var reviews []entity.Review
	if err := decode("data/reviews.json", &reviews); err != nil {
		return nil, err
	}
	var listings []entity.Listing
	if err := decode("data/listings.json", &listings); err != nil {
		return nil, err
	}
	return NewStore(reviews, listings), nil
}

func decode(name string, dst interface{}) error {
	raw, err := seed.ReadFile(name)
	if err != nil {
		return fmt.Errorf("fixture: не удалось прочитать %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("fixture: не удалось разобрать %s: %w", name, err)
	}
	return nil
}

// Reviews возвращает снимок всех отзывов в исходном порядке.
func (s *Store) Reviews() []entity.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Review, len(s.reviews))
	for i, r := range s.reviews {
		out[i] = cloneReview(r)
	}
	return out
}

// Review ищет отзыв по id.
func (s *Store) Review(id int) (entity.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return entity.Review{}, false
	}
	return cloneReview(s.reviews[pos]), true
}

// SetStatus меняет статус отзыва. Для неизвестного id ничего не меняется.
func (s *Store) SetStatus(id int, status valueobject.ReviewStatus) (entity.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return entity.Review{}, false
	}
	s.reviews[pos].Status = status
	return cloneReview(s.reviews[pos]), true
}

// Listings возвращает объекты со статистикой по опубликованным отзывам.
func (s *Store) Listings() []entity.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = s.withStats(l)
	}
	return out
}

func (s *Store) Listing(id int) (entity.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.listings {
		if l.ID == id {
			return s.withStats(l), true
		}
	}
	return entity.Listing{}, false
}

// withStats считает средний рейтинг (0–10, два знака) и число опубликованных отзывов.
// Вызывается под блокировкой.
func (s *Store) withStats(l entity.Listing) entity.Listing {
	l.Amenities = slices.Clone(l.Amenities)
	l.Images = slices.Clone(l.Images)

	var sum, count int
	for _, r := range s.reviews {
		if r.ListingID == l.ID && r.Status.IsPublic() {
			sum += r.Rating
			count++
		}
	}
	l.ReviewCount = &count
	if count > 0 {
		avg := math.Round(float64(sum)/float64(count)*100) / 100
		l.AverageReviewRating = &avg
	} else {
		l.AverageReviewRating = nil
	}
	return l
}

func cloneReview(r entity.Review) entity.Review {
	if r.PublicReview != nil {
		text := *r.PublicReview
		r.PublicReview = &text
	}
	r.CategoryRating = slices.Clone(r.CategoryRating)
	return r
}

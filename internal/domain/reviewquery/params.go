package reviewquery

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
	"github.com/ignatzorin/listing-reviews/internal/validation"
)

// NaN подставляется вместо элемента списка, который не удалось разобрать как число.
// Такой элемент не отбрасывается: валидатор отклонит его как неизвестный канал.
const NaN = math.MinInt

// Порядок полей определяет, какая ошибка считается первой.
var fieldOrder = []string{
	"listingId", "type", "channels", "from", "to", "minRating",
	"categories", "sortBy", "sortOrder", "limit", "offset",
}

var fieldMessages = map[string]string{
	"listingId":  "Please provide a valid listing.",
	"type":       "Please provide a valid review type.",
	"channels":   "Please provide a valid review channel(s).",
	"from":       "Please provide a valid start date.",
	"to":         "Please provide a valid end date.",
	"minRating":  "Please provide rating within range 1 - 5",
	"categories": "Please provide valid review categorie(s).",
	"sortBy":     "Please provide a valid value to sort review by.",
	"sortOrder":  "Please provide a valid value for review sorting direction.",
	"limit":      "Please provide a valid value to limit reviews.",
	"offset":     "Please provide a valid value to skip some reviews.",
}

// params - разобранные, но ещё не проверенные параметры запроса.
type params struct {
	ListingID  *int                   `json:"listingId" validate:"omitempty,gt=0"`
	Type       valueobject.ReviewType `json:"type" validate:"omitempty,review_type"`
	Channels   []valueobject.Channel  `json:"channels" validate:"omitempty,dive,review_channel"`
	From       *time.Time             `json:"from"`
	To         *time.Time             `json:"to"`
	MinRating  *int                   `json:"minRating" validate:"omitempty,min=1,max=5"`
	Categories []valueobject.Category `json:"categories" validate:"omitempty,dive,review_category"`
	SortBy     string                 `json:"sortBy" validate:"omitempty,sort_by"`
	SortOrder  string                 `json:"sortOrder" validate:"omitempty,sort_order"`
	Limit      *int                   `json:"limit" validate:"omitempty,min=0"`
	Offset     *int                   `json:"offset" validate:"omitempty,min=0"`
}

// Parse превращает сырые параметры запроса в типизированный Query.
// При ошибке возвращается validation.Errors со всеми невалидными полями
// в порядке fieldOrder; первая из них считается основной.
func Parse(values url.Values) (Query, error) {
	var (
		p    params
		errs validation.Errors
	)
	fail := func(field string) {
		if !errs.Has(field) {
			errs = append(errs, validation.FieldError{Field: field, Message: fieldMessages[field]})
		}
	}

	var ok bool
	if p.ListingID, ok = intParam(values, "listingId"); !ok {
		fail("listingId")
	}
	if raw, present := scalar(values, "type"); present {
		p.Type = valueobject.ReviewType(raw)
	}
	if list := List(values, "channels"); list != nil {
		for _, n := range Ints(list) {
			p.Channels = append(p.Channels, valueobject.Channel(n))
		}
	}
	if p.From, ok = dateParam(values, "from"); !ok {
		fail("from")
	}
	if p.To, ok = dateParam(values, "to"); !ok {
		fail("to")
	}
	if p.MinRating, ok = intParam(values, "minRating"); !ok {
		fail("minRating")
	}
	for _, c := range List(values, "categories") {
		p.Categories = append(p.Categories, valueobject.Category(c))
	}
	p.SortBy, _ = scalar(values, "sortBy")
	p.SortOrder, _ = scalar(values, "sortOrder")
	if p.Limit, ok = intParam(values, "limit"); !ok {
		fail("limit")
	}
	if p.Offset, ok = intParam(values, "offset"); !ok {
		fail("offset")
	}

	if err := validation.Struct(p, fieldMessages); err != nil {
		verrs, isFieldErrs := err.(validation.Errors)
		if !isFieldErrs {
			return Query{}, err
		}
		for _, fe := range verrs {
			fail(fe.Field)
		}
	}
	if p.From != nil && p.To != nil && p.From.After(*p.To) {
		fail("to")
	}

	if len(errs) > 0 {
		errs.SortBy(fieldOrder)
		return Query{}, errs
	}
	return p.query(), nil
}

func (p params) query() Query {
	q := Query{
		ListingID:  p.ListingID,
		Type:       p.Type,
		Channels:   p.Channels,
		From:       p.From,
		To:         p.To,
		Categories: p.Categories,
		SortBy:     valueobject.SortBySubmittedAt,
		SortOrder:  valueobject.SortOrderDesc,
		Limit:      p.Limit,
	}
	if p.MinRating != nil {
		doubled := *p.MinRating * 2
		q.MinRating = &doubled
	}
	if by, ok := valueobject.ParseSortBy(p.SortBy); ok {
		q.SortBy = by
	}
	if order, ok := valueobject.ParseSortOrder(p.SortOrder); ok {
		q.SortOrder = order
	}
	if p.Offset != nil {
		q.Offset = *p.Offset
	}
	return q
}

// List достаёт списочный параметр. Повторяющиеся параметры берутся как есть,
// одиночное значение с запятыми режется на части, иначе оборачивается в список.
// Отсутствующий или пустой параметр даёт nil, а не пустой список.
func List(values url.Values, key string) []string {
	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if len(raw) > 1 {
		return raw
	}
	single := raw[0]
	if single == "" {
		return nil
	}
	if !strings.Contains(single, ",") {
		return []string{single}
	}
	parts := strings.Split(single, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Ints разбирает элементы списка как целые числа; неразобранные становятся NaN.
func Ints(list []string) []int {
	if list == nil {
		return nil
	}
	out := make([]int, len(list))
	for i, s := range list {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			n = NaN
		}
		out[i] = n
	}
	return out
}

func scalar(values url.Values, key string) (string, bool) {
	raw := strings.TrimSpace(values.Get(key))
	return raw, raw != ""
}

// intParam: ok=false только если значение есть, но это не целое число.
func intParam(values url.Values, key string) (*int, bool) {
	raw, present := scalar(values, key)
	if !present {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// dateParam принимает RFC3339 или YYYY-MM-DD (полночь UTC).
func dateParam(values url.Values, key string) (*time.Time, bool) {
	raw, present := scalar(values, key)
	if !present {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts, true
		}
	}
	return nil, false
}

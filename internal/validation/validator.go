package validation

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/ignatzorin/listing-reviews/internal/domain/valueobject"
)

// Service хранит общий валидатор и переводчик сообщений.
type Service struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Service
)

// Get возвращает валидатор, инициализируя его при первом обращении.
// Имена полей в ошибках берутся из json-тегов.
func Get() *Service {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		for _, t := range customTags {
			register(v, trans, t)
		}

		svc = &Service{Validator: v, Translator: trans}
	})
	return svc
}

// Struct проверяет структуру и возвращает Errors (или nil).
// messages подменяет стандартный текст ошибки для конкретного поля.
func Struct(s interface{}, messages map[string]string) error {
	err := Get().Validator.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	return Collect(verrs, messages)
}

// Collect превращает ошибки валидатора в Errors, по одной на поле.
func Collect(verrs validator.ValidationErrors, messages map[string]string) Errors {
	trans := Get().Translator
	seen := make(map[string]bool, len(verrs))
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldName(fe)
		if seen[field] {
			continue
		}
		seen[field] = true

		msg, ok := messages[field]
		if !ok {
			msg = fe.Translate(trans)
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}

// fieldName отбрасывает индекс элемента: channels[1] -> channels.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// FieldError - ошибка одного поля запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors - все ошибки запроса. Порядок задаёт вызывающий через SortBy.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Message
}

// First возвращает первую ошибку (для режима fail-fast).
func (e Errors) First() FieldError {
	if len(e) == 0 {
		return FieldError{}
	}
	return e[0]
}

// Has сообщает, есть ли уже ошибка по полю.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// SortBy упорядочивает ошибки по списку полей. Неизвестные поля уходят в конец.
func (e Errors) SortBy(order []string) {
	rank := make(map[string]int, len(order))
	for i, f := range order {
		rank[f] = i
	}
	pos := func(f string) int {
		if r, ok := rank[f]; ok {
			return r
		}
		return len(order)
	}
	sort.SliceStable(e, func(i, j int) bool {
		return pos(e[i].Field) < pos(e[j].Field)
	})
}

type customTag struct {
	tag  string
	text string
	fn   validator.Func
}

var customTags = []customTag{
	{
		tag:  "review_type",
		text: "{0} must be guest-to-host or host-to-guest",
		fn: func(fl validator.FieldLevel) bool {
			return valueobject.ReviewType(fl.Field().String()).IsValid()
		},
	},
	{
		tag:  "review_status",
		text: "{0} must be published or awaiting",
		fn: func(fl validator.FieldLevel) bool {
			return valueobject.ReviewStatus(fl.Field().String()).IsValid()
		},
	},
	{
		tag:  "review_channel",
		text: "{0} must be a known channel code",
		fn: func(fl validator.FieldLevel) bool {
			return valueobject.Channel(fl.Field().Int()).IsKnown()
		},
	},
	{
		tag:  "review_category",
		text: "{0} must be a known review category",
		fn: func(fl validator.FieldLevel) bool {
			return valueobject.Category(fl.Field().String()).IsValid()
		},
	},
	{
		tag:  "sort_by",
		text: "{0} must be submittedAt or Rating",
		fn: func(fl validator.FieldLevel) bool {
			_, ok := valueobject.ParseSortBy(fl.Field().String())
			return ok
		},
	},
	{
		tag:  "sort_order",
		text: "{0} must be asc or desc",
		fn: func(fl validator.FieldLevel) bool {
			_, ok := valueobject.ParseSortOrder(fl.Field().String())
			return ok
		},
	},
}

func register(v *validator.Validate, trans ut.Translator, t customTag) {
	_ = v.RegisterValidation(t.tag, t.fn)
	_ = v.RegisterTranslation(t.tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(t.tag, t.text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(t.tag, fieldName(fe))
			return msg
		},
	)
}

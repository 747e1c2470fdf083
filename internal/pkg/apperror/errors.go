package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode совпадает с полем name в ответе API.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "ValidationError"
	ErrCodeForbidden  ErrorCode = "Forbidden"
	ErrCodeNotFound   ErrorCode = "NotFoundError"
	ErrCodeUpstream   ErrorCode = "HostawayError"
	ErrCodeInternal   ErrorCode = "InternalServerError"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
	// Details уходит в data ответа, в message не попадает.
	Details interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// WithDetails возвращает копию ошибки с диагностическими данными.
func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf возвращает код ошибки или ErrCodeInternal для неизвестных ошибок.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeForbidden
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

func IsUpstream(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeUpstream
}

var (
	ErrAdminRequired    = New(ErrCodeForbidden, "Admin access required")
	ErrInvalidReviewID  = New(ErrCodeValidation, "Please provide a valid review ID")
	ErrInvalidListing   = New(ErrCodeValidation, "Please provide a valid listing ID")
	ErrInvalidStatus    = New(ErrCodeValidation, "Please provide a valid review status.")
	ErrReviewNotFound   = New(ErrCodeNotFound, "Review not found")
	ErrReviewNotPatched = New(ErrCodeNotFound, "Review not found or could not update")
	ErrListingNotFound  = New(ErrCodeNotFound, "Listing not found")
	ErrRouteNotFound    = New(ErrCodeNotFound, "Not found.")
)

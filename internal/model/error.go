// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrMissingOwner   = errors.New("owner id is required")
	ErrInvalidGrade   = errors.New("invalid grade")
	ErrConflict       = errors.New("resource conflict")
	ErrInfrastructure = errors.New("backing store unavailable")
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail is the body of an API error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError carries a client-facing detail together with the sentinel (or
// wrapped cause) used for status mapping.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Detail.Message
	}
	return e.Detail.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the failure left no state behind and the
// caller may simply try again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrInfrastructure) || errors.Is(err, ErrConflict)
}

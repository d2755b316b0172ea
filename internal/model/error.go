// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// 애플리케이션 공통 에러
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrForbidden       = errors.New("forbidden")
	ErrAcademyNotFound = errors.New("academy not found or invalid")
	ErrConflict        = errors.New("resource conflict") // 중복 에러용
)

// AppError 는 에러 코드/메시지/필드를 함께 담는 애플리케이션 에러입니다.
// errors.Is 판정은 래핑된 원인 에러로 수행됩니다.
type AppError struct {
	Detail ErrorDetail
	err    error
}

// ErrorDetail 은 클라이언트에 반환되는 에러 본문입니다.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewAppError(code, message, field string, cause error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		err: cause,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Detail.Code, e.Detail.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.err
}

// APIErrorResponse 는 에러 응답의 최상위 구조체입니다.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

package order

import (
	"errors"
	"fmt"
)

// ErrInvalidInput은 모든 입력 검증 에러가 감싸는 기본 에러입니다
var ErrInvalidInput = errors.New("잘못된 주문 입력")

// ValidationError는 어떤 필드가 어떤 이유로 거부되었는지 나타냅니다
type ValidationError struct {
	Field  string
	Reason string
}

// Error는 error 인터페이스를 구현합니다
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap은 ErrInvalidInput을 반환합니다 (errors.Is 지원을 위함)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

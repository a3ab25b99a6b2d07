package e

import (
	"fmt"
	"sort"
	"strings"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidPrice     = fmt.Errorf("price must be a non-negative integer")
	ErrInvalidAmount    = fmt.Errorf("amount must have at most 2 decimal places and 10 digits")
	ErrEmailTaken       = fmt.Errorf("email already registered")

	// 401 Unauthorized
	ErrAuthenticationFailed = fmt.Errorf("authentication failed")

	// 403 Forbidden
	ErrPermissionDenied = fmt.Errorf("permission denied")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")

	// Ошибки платёжного коллаборатора
	ErrUpstreamClient = fmt.Errorf("upstream rejected request")
	ErrUpstreamServer = fmt.Errorf("upstream failure")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// ValidationError накапливает ошибки валидации по полям: одно сообщение на
// каждое некорректное поле. На границе HTTP разворачивается в 400-ответ
// с картой поле -> сообщение.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Addf добавляет сообщение об ошибке для поля.
func (v *ValidationError) Addf(field, format string, args ...any) {
	v.Fields[field] = fmt.Sprintf(format, args...)
}

// OrNil возвращает nil, если ошибок не накоплено.
func (v *ValidationError) OrNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

package domain

import (
	"fmt"
	"strings"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodePersistence = "PERSISTENCE_ERROR"
	CodeBadRequest  = "BAD_REQUEST"
)

type DomainError struct {
	Code    string
	Message string
	// Fields перечисляет незаполненные обязательные поля (только для VALIDATION_ERROR)
	Fields []string
	Err    error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - не заполнены обязательные поля
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "required field is missing",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrPersistence - ошибка чтения или записи хранилища
	ErrPersistence = &DomainError{
		Code:    CodePersistence,
		Message: "persistence failure",
	}

	// ErrBadRequest - некорректный запрос
	ErrBadRequest = &DomainError{
		Code:    CodeBadRequest,
		Message: "bad request",
	}
)

// NewValidationError создает ошибку VALIDATION_ERROR с перечнем полей
func NewValidationError(fields ...string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: strings.Join(fields, ", ") + " required",
		Fields:  fields,
	}
}

// NewInvalidFieldError создает ошибку VALIDATION_ERROR для поля с неверным значением
func NewInvalidFieldError(field, reason string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("%s %s", field, reason),
		Fields:  []string{field},
	}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewPersistenceError оборачивает ошибку хранилища
func NewPersistenceError(op string, err error) *DomainError {
	return &DomainError{
		Code:    CodePersistence,
		Message: "failed to " + op + " state",
		Err:     err,
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

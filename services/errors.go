package services

import (
	"errors"
	"fmt"
)

// Ошибки консоли, используемые в сервисах и маппинге HTTP.
var (
	// Сессия
	ErrSessionRequired    = errors.New("authentication required")
	ErrSessionActive      = errors.New("another user is already signed in; log out first")
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	// Состояние представлений
	ErrViewSuperseded  = errors.New("view superseded by a newer request")
	ErrNoEditingTarget = errors.New("no form is open for editing")
	ErrDetailNotOpen   = errors.New("tournament detail is not open")

	// Данные
	ErrRatingNotFound = errors.New("rating entry not found")
	ErrInvalidSeating = errors.New("backend returned invalid seating")
)

// ValidationError - ввод отклонён до обращения к бэкенду.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

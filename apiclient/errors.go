package apiclient

import (
	"errors"
	"fmt"
)

// ErrTransport - запрос не дошёл до бэкенда или ответ не удалось разобрать.
var ErrTransport = errors.New("backend transport failure")

// TransportError хранит подробности сбоя. Пользователю они не показываются.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// APIError - бэкенд ответил success:false. Message показывается пользователю.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "backend rejected the request"
	}
	return e.Message
}

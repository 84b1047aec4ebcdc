package service

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrValidation конструирует AppError для отсутствующих или пустых обязательных параметров.
func ErrValidation(msg string) *AppError {
	return &AppError{
		Code:    "VALIDATION_FAILED",
		Message: msg,
		Status:  http.StatusUnprocessableEntity,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов.
// Повторная запись (ALREADY_SIGNED_UP) отдаётся клиенту как 400, остальные конфликты как 409.
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	if code == CodeAlreadySignedUp {
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// ErrInternal оборачивает непредвиденную ошибку хранилища.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}

// IsAlreadySignedUp сообщает, является ли ошибка отказом из-за повторной записи.
func IsAlreadySignedUp(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code == CodeAlreadySignedUp
	}
	return false
}

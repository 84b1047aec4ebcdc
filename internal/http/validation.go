package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"activity-signup-service/internal/service"
)

// activityNameParam достаёт имя активности из пути.
// Если запрос пришёл с закодированными символами, которые net/url не раскрыл в Path
// (например, %2F), имя раскодируется вручную.
func activityNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "activity_name")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return "", service.ErrBadRequest("activity_name is not a valid path segment")
		}
		name = decoded
	}
	if name == "" {
		return "", service.ErrValidation("activity_name is required")
	}
	return name, nil
}

// ValidateEmailQuery Валидация query-параметра email для signup/unregister.
// Формат адреса не проверяется: email используется как непрозрачный ключ участника.
func ValidateEmailQuery(email string) error {
	if email == "" {
		return service.ErrValidation("email query parameter is required")
	}
	return nil
}

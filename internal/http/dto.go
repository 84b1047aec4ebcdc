// Package http реализует HTTP-обработчики и DTO поверх сервиса активностей.
package http

// errorResponse сохраняет поле detail исходного API и добавляет структурированную ошибку.
type errorResponse struct {
	Detail string    `json:"detail"`
	Error  errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

package dto

import "net/http"

// ErrorResponse: единый формат тела ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable entity",
	http.StatusTooManyRequests:     "Too Many Requests",
	http.StatusInternalServerError: "Internal server error",
	http.StatusServiceUnavailable:  "Service Unavailable",
}

// NewErrorResponse создает тело ошибки для HTTP-статуса
func NewErrorResponse(status int) ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return ErrorResponse{Success: false, Error: status, Message: message}
}

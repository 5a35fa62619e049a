package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// abortWithError прерывает запрос с единым телом ошибки
func abortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

// handleError логирует внутреннюю ошибку и переводит ее в HTTP-статус.
// Текст ошибки клиенту не отдается.
func handleError(c *gin.Context, op string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: [%s] request %s: %v", op, middleware.GetRequestID(c), err)
	} else {
		log.Printf("[%s] request %s: %v", op, middleware.GetRequestID(c), err)
	}
	abortWithError(c, status)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnprocessable), errors.Is(err, apperrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

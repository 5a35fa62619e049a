package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
)

// Recovery перехватывает панику в обработчике и отвечает 500 в едином формате ошибки
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[Recovery] panic on %s %s (request %s): %v",
			c.Request.Method, c.Request.URL.Path, GetRequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
	})
}

package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// failStatus - HTTP-статус, с которым прерывается запрос при невалидном значении.
func ExtractUintParam(paramName, contextKey string, failStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(failStatus, dto.NewErrorResponse(failStatus))
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}

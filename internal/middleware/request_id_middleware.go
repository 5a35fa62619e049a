package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader: заголовок с идентификатором запроса
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey: ключ идентификатора запроса в контексте Gin
	RequestIDKey = "requestID"
)

// RequestID берет X-Request-ID из запроса или генерирует новый и возвращает его в ответе
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID возвращает идентификатор текущего запроса (пустую строку, если middleware не подключен)
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

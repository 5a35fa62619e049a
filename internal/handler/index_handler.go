package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger проверяет доступность внешней зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc позволяет использовать обычную функцию как Pinger
type PingFunc func(ctx context.Context) error

// Ping реализует Pinger
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// IndexHandler обслуживает корневой маршрут и проверку здоровья
type IndexHandler struct {
	dependencies map[string]Pinger
}

// NewIndexHandler создает обработчик. dependencies: проверяемые в /healthz зависимости по имени.
func NewIndexHandler(dependencies map[string]Pinger) *IndexHandler {
	return &IndexHandler{dependencies: dependencies}
}

// Index: приветственное сообщение API
// GET /
func (h *IndexHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Index",
		"message": "This is a homepage message",
	})
}

// Health проверяет зависимости
// GET /healthz
func (h *IndexHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.dependencies))
	healthy := true
	for name, dep := range h.dependencies {
		if err := dep.Ping(ctx); err != nil {
			log.Printf("[Health] %s is unavailable: %v", name, err)
			checks[name] = "unavailable"
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
}

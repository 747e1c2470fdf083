package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/goroutine"
	"github.com/ignatzorin/listing-reviews/internal/interface/http/response"
	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
)

// HealthHandler проверяет доступность источников данных.
type HealthHandler struct {
	sources map[string]repository.Pinger
	timeout time.Duration
}

// NewHealthHandler создаёт health handler. Ключ карты - имя проверки в ответе.
func NewHealthHandler(sources map[string]repository.Pinger, timeout time.Duration) *HealthHandler {
	return &HealthHandler{sources: sources, timeout: timeout}
}

// HealthStatus - data ответа /health.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health обрабатывает GET /health. Источники опрашиваются параллельно.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]string, len(h.sources))
	)
	for name, src := range h.sources {
		name, src := name, src
		checks[name] = "unhealthy: no response"
		wg.Add(1)
		goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
			defer wg.Done()
			result := "healthy"
			if err := src.Ping(ctx); err != nil {
				result = "unhealthy: " + err.Error()
			}
			mu.Lock()
			checks[name] = result
			mu.Unlock()
		})
	}
	wg.Wait()

	status := "healthy"
	for _, result := range checks {
		if result != "healthy" {
			status = "unhealthy"
		}
	}

	data := HealthStatus{Status: status, Timestamp: time.Now().UTC(), Checks: checks}
	if status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, response.Envelope{
			Name:    string(apperror.ErrCodeUpstream),
			Message: "Data source unavailable",
			Data:    data,
		})
		return
	}
	response.Success(c, "Service is healthy", data)
}

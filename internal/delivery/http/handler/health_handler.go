package handler

import (
	"context"
	"net/http"
	"time"

	"dental-clinic-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const readyTimeout = 2 * time.Second

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

// NewHealthHandler builds the probes. redisClient may be nil when token
// checks are disabled.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready pings the database and Redis.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	checks := map[string]string{"database": "ok"}
	ready := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		checks["database"] = "unavailable"
		ready = false
	}

	if h.redisClient != nil {
		checks["redis"] = "ok"
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unavailable"
			ready = false
		}
	}

	if !ready {
		response.JSON(w, http.StatusServiceUnavailable, response.Response{
			Status:  http.StatusServiceUnavailable,
			Message: "Service not ready",
			Errors:  checks,
		})
		return
	}

	response.Success(w, http.StatusOK, checks)
}

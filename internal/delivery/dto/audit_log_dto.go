package dto

import (
	"time"

	"dental-clinic-api/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64              `json:"id"`
	Actor     *PersonnelResponse `json:"actor,omitempty"`
	Action    string             `json:"action"`
	Metadata  entity.JSON        `json:"metadata"`
	CreatedAt time.Time          `json:"created_at"`
}

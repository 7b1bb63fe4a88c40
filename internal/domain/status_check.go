package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a client liveness ping kept for diagnostics.
type StatusCheck struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientName string    `gorm:"not null;column:client_name" json:"client_name"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
}

func (StatusCheck) TableName() string { return "status_check" }

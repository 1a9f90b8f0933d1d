package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyActivity is one user's app activity for one local calendar day.
// FirstOpenedAt is written by the first ping of the day and never changes afterwards.
type DailyActivity struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	ActivityDate  time.Time  `json:"activity_date"`
	Opened        bool       `json:"opened"`
	Reading       bool       `json:"reading"`
	FirstOpenedAt *time.Time `json:"first_opened_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyActivityModel mirrors the 'daily_activities' table, one row per user and local date.
type DailyActivityModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uniq_daily_activity_user_date,priority:1"`
	ActivityDate  time.Time  `gorm:"type:date;not null;uniqueIndex:uniq_daily_activity_user_date,priority:2"`
	Opened        bool       `gorm:"not null;default:false"`
	Reading       bool       `gorm:"not null;default:false"`
	FirstOpenedAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyActivityModel) TableName() string {
	return "daily_activities"
}

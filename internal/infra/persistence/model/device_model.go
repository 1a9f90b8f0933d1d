package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceRegistrationModel is the GORM-specific struct for the 'device_registrations' table.
// The token is unique across users; re-registering moves it to the caller.
type DeviceRegistrationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceToken string     `gorm:"type:varchar(512);not null;uniqueIndex"`
	Platform    string     `gorm:"type:varchar(20);not null"`
	Locale      string     `gorm:"type:varchar(10)"`
	Timezone    string     `gorm:"type:varchar(64);index"`
	LastSeenAt  *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceRegistrationModel) TableName() string {
	return "device_registrations"
}

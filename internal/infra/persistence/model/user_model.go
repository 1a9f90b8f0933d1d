package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Accounts are owned by the auth service,
// this module only reads them.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username  string    `gorm:"type:varchar(150)"`
	Timezone  string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PersonalKhitmaModel mirrors the 'personal_khitma_progress' table.
type PersonalKhitmaModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonalKhitmaModel) TableName() string {
	return "personal_khitma_progress"
}

// PersonalKhitmaDailyModel mirrors the 'personal_khitma_daily_progress' table.
type PersonalKhitmaDailyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	KhitmaID    uuid.UUID `gorm:"type:uuid;not null;index:idx_khitma_daily_progress,priority:1"`
	ReadingDate time.Time `gorm:"type:date;not null;index:idx_khitma_daily_progress,priority:2"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonalKhitmaDailyModel) TableName() string {
	return "personal_khitma_daily_progress"
}

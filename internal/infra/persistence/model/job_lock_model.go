package model

import "time"

// JobLockModel mirrors the 'job_locks' table holding one lease per scheduler job.
type JobLockModel struct {
	JobName    string    `gorm:"type:varchar(64);primaryKey"`
	Owner      string    `gorm:"type:varchar(64);not null"`
	AcquiredAt time.Time `gorm:"type:timestamptz;not null"`
	ExpiresAt  time.Time `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (JobLockModel) TableName() string {
	return "job_locks"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AppNotificationModel mirrors the 'app_notifications' inbox table.
// uniq_app_notification_daily keeps scheduled notifications to one per user, type
// and local date; rows without a dispatch date never conflict.
type AppNotificationModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_app_notifications_user_created,priority:1;uniqueIndex:uniq_app_notification_daily,priority:1"`
	Type         string            `gorm:"type:varchar(50);not null;uniqueIndex:uniq_app_notification_daily,priority:2"`
	Title        string            `gorm:"type:varchar(255);not null"`
	Body         string            `gorm:"type:text;not null"`
	Data         datatypes.JSONMap `gorm:"type:jsonb"`
	ReadAt       *time.Time        `gorm:"type:timestamptz"`
	DispatchDate *time.Time        `gorm:"type:date;uniqueIndex:uniq_app_notification_daily,priority:3"`
	CreatedAt    time.Time         `gorm:"index:idx_app_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (AppNotificationModel) TableName() string {
	return "app_notifications"
}

// NotificationPreferenceModel mirrors the 'notification_preferences' table.
type NotificationPreferenceModel struct {
	ID                             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AllowGroupNotifications        bool      `gorm:"not null"`
	AllowMotivationalNotifications bool      `gorm:"not null"`
	AllowPersonalReminders         bool      `gorm:"not null"`
	PreferredPersonalReminderHour  *string   `gorm:"type:varchar(2)"`
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

// PushEventModel mirrors the 'push_events' delivery and tracking log.
type PushEventModel struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           *uuid.UUID        `gorm:"type:uuid;index"`
	NotificationID   *uuid.UUID        `gorm:"type:uuid;index"`
	DeviceToken      string            `gorm:"type:varchar(512)"`
	NotificationType string            `gorm:"type:varchar(50)"`
	Event            string            `gorm:"type:varchar(20);not null;index"`
	Payload          datatypes.JSONMap `gorm:"type:jsonb"`
	ErrorMessage     string            `gorm:"type:text"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushEventModel) TableName() string {
	return "push_events"
}

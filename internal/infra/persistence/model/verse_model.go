package model

import (
	"time"

	"github.com/google/uuid"
)

// VerseModel mirrors the 'verses' catalog table. A verse is identified by its surah and ayah.
type VerseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SurahName   string    `gorm:"type:varchar(100);not null"`
	SurahNameAr string    `gorm:"type:varchar(100)"`
	SurahNumber int       `gorm:"not null;uniqueIndex:uniq_verse_surah_ayah,priority:1"`
	AyahNumber  int       `gorm:"not null;uniqueIndex:uniq_verse_surah_ayah,priority:2"`
	ArabicText  string    `gorm:"type:text;not null"`
	Translation string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerseModel) TableName() string {
	return "verses"
}

// VerseAssignmentModel mirrors the 'verse_assignments' table.
// The unique index is what makes concurrent assignment idempotent.
type VerseAssignmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_verse_assignment_user_date,priority:1"`
	VerseID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ShownDate time.Time `gorm:"type:date;not null;uniqueIndex:uniq_verse_assignment_user_date,priority:2"`
	CreatedAt time.Time

	Verse *VerseModel `gorm:"foreignKey:VerseID"`
}

// TableName explicitly sets the table name for GORM.
func (VerseAssignmentModel) TableName() string {
	return "verse_assignments"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Verse is an entry of the motivational verse catalog.
type Verse struct {
	ID          uuid.UUID `json:"id"`
	SurahName   string    `json:"surah_name"`
	SurahNameAr string    `json:"surah_name_ar"`
	SurahNumber int       `json:"surah_number"`
	AyahNumber  int       `json:"ayah_number"`
	ArabicText  string    `json:"arabic_text"`
	Translation string    `json:"translation"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VerseAssignment records the verse shown to a user on a local date.
// There is at most one assignment per user and date.
type VerseAssignment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	VerseID   uuid.UUID `json:"verse_id"`
	ShownDate time.Time `json:"shown_date"`
	CreatedAt time.Time `json:"created_at"`
}

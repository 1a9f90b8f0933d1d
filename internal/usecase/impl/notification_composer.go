package impl

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"khitma/internal/domain/entity"
	"khitma/internal/usecase"
)

// FallbackFirstName greets users whose name is missing or too short.
const FallbackFirstName = "صديقي"

const navigateHome = "home"

type notificationComposer struct{}

// NewNotificationComposer creates the composer for the built-in Arabic and English templates.
func NewNotificationComposer() usecase.NotificationComposer {
	return &notificationComposer{}
}

// ResolveLanguage uses the locale of the most recently registered device.
func (c *notificationComposer) ResolveLanguage(devices []*entity.DeviceRegistration) entity.Language {
	latest := entity.MostRecentDevice(devices)
	if latest == nil {
		return entity.LanguageEnglish
	}

	return entity.ClassifyLocale(latest.Locale)
}

func (c *notificationComposer) ComposeVerse(verse *entity.Verse, lang entity.Language) *entity.NotificationContent {
	title := "Motivational verse today"
	text, surah := verse.Translation, verse.SurahName
	if lang == entity.LanguageArabic {
		title = "آية تحفيزية اليوم"
		text, surah = verse.ArabicText, verse.SurahNameAr
	}

	return &entity.NotificationContent{
		Type:     entity.NotificationTypeMotivational,
		Category: entity.CategoryMotivational,
		Title:    title,
		Body:     text + "\n— " + surah + " - " + strconv.Itoa(verse.AyahNumber),
		Data: map[string]any{
			"verse_id":      verse.ID.String(),
			"surah_name":    verse.SurahName,
			"surah_name_ar": verse.SurahNameAr,
			"surah_number":  verse.SurahNumber,
			"ayah_number":   verse.AyahNumber,
			"arabic_text":   verse.ArabicText,
			"translation":   verse.Translation,
		},
		PushData: map[string]any{
			"type":        "motivational_verse",
			"verse_id":    verse.ID.String(),
			"navigate_to": navigateHome,
		},
	}
}

func (c *notificationComposer) ComposeEveningReminder(username string, lang entity.Language) *entity.NotificationContent {
	name := FirstName(username)

	title := "Today’s reminder"
	body := "Assalamu Alaikum " + name + "! Don’t forget your daily wered (Qur’an) and dhikr before 6 PM."
	if lang == entity.LanguageArabic {
		title = "تذكير اليوم"
		body = "السلام عليكم " + name + "! لا تنسَ وردك اليوم من القرآن والذِّكر قبل الساعة 6 مساءً."
	}

	return &entity.NotificationContent{
		Type:     entity.NotificationTypeIndividualReminder,
		Category: entity.CategoryPersonalReminder,
		Title:    title,
		Body:     body,
		Data: map[string]any{
			"type":        "personal_dhikr_wered_reminder",
			"navigate_to": navigateHome,
		},
		PushData: map[string]any{
			"type":        "individual_reminder",
			"navigate_to": navigateHome,
		},
	}
}

// FirstName returns the first whitespace-separated token of username, or
// FallbackFirstName when that token has fewer than two characters.
func FirstName(username string) string {
	fields := strings.Fields(username)
	if len(fields) == 0 || utf8.RuneCountInString(fields[0]) < 2 {
		return FallbackFirstName
	}

	return fields[0]
}

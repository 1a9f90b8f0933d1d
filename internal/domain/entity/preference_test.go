package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationPreferenceAllows(t *testing.T) {
	pref := DefaultNotificationPreference(uuid.New())
	assert.True(t, pref.Allows(CategoryGroup))
	assert.True(t, pref.Allows(CategoryMotivational))
	assert.True(t, pref.Allows(CategoryPersonalReminder))

	pref.AllowMotivationalNotifications = false
	assert.False(t, pref.Allows(CategoryMotivational))
	assert.True(t, pref.Allows(CategoryPersonalReminder))
	assert.True(t, pref.Allows("unknown"))

	var missing *NotificationPreference
	assert.True(t, missing.Allows(CategoryMotivational))
}

func TestDeviceHelpers(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	older := &DeviceRegistration{DeviceToken: "old", Locale: "en", Timezone: "Europe/London", CreatedAt: base}
	newer := &DeviceRegistration{DeviceToken: "new", Locale: "ar", CreatedAt: base.Add(time.Hour)}
	empty := &DeviceRegistration{CreatedAt: base.Add(-time.Hour)}

	devices := []*DeviceRegistration{older, newer, empty, nil}

	assert.Equal(t, []string{"old", "new"}, Tokens(devices))
	assert.Same(t, newer, MostRecentDevice(devices))
	assert.Equal(t, "Europe/London", MostRecentTimezone(devices))
	assert.Nil(t, MostRecentDevice(nil))
}

func TestMostRecentDevice_ReRegisteredTokenWins(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	reRegistered := base.Add(48 * time.Hour)

	// First registered long ago, registered again today from a new locale and timezone.
	phone := &DeviceRegistration{
		DeviceToken: "phone",
		Locale:      "ar_SA",
		Timezone:    "Asia/Riyadh",
		CreatedAt:   base,
		UpdatedAt:   reRegistered,
		LastSeenAt:  &reRegistered,
	}
	tablet := &DeviceRegistration{
		DeviceToken: "tablet",
		Locale:      "en",
		Timezone:    "Europe/London",
		CreatedAt:   base.Add(24 * time.Hour),
		UpdatedAt:   base.Add(24 * time.Hour),
	}
	devices := []*DeviceRegistration{tablet, phone}

	assert.Equal(t, reRegistered, phone.RegisteredAt())
	assert.Equal(t, base.Add(24*time.Hour), tablet.RegisteredAt())
	assert.Same(t, phone, MostRecentDevice(devices))
	assert.Equal(t, "Asia/Riyadh", MostRecentTimezone(devices))
}

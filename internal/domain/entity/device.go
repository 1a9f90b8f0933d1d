// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Supported device platforms.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformWeb     = "web"
)

// DeviceRegistration is a push token registered by a user's device.
// Timezone is the key the scheduler shards its work by.
type DeviceRegistration struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the registration.
	UserID      uuid.UUID  `json:"user_id"`      // The ID of the user who owns this device.
	DeviceToken string     `json:"device_token"` // FCM or Expo push token, unique across all users.
	Platform    string     `json:"platform"`     // Device platform (android, ios, web).
	Locale      string     `json:"locale"`       // Client locale tag, e.g. "ar_SA" or "en".
	Timezone    string     `json:"timezone"`     // IANA timezone reported by the client.
	LastSeenAt  *time.Time `json:"last_seen_at"` // Last time the client re-registered this token.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp of when this token was first registered.
	UpdatedAt   time.Time  `json:"updated_at"`   // Timestamp of the last modification.
}

// Tokens returns the non-empty device tokens of the given registrations.
func Tokens(devices []*DeviceRegistration) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device == nil || device.DeviceToken == "" {
			continue
		}
		tokens = append(tokens, device.DeviceToken)
	}

	return tokens
}

// RegisteredAt is the last time the token was registered. Re-registering a known
// token refreshes last_seen_at and updated_at but keeps created_at.
func (d *DeviceRegistration) RegisteredAt() time.Time {
	latest := d.CreatedAt
	if d.UpdatedAt.After(latest) {
		latest = d.UpdatedAt
	}
	if d.LastSeenAt != nil && d.LastSeenAt.After(latest) {
		latest = *d.LastSeenAt
	}

	return latest
}

// MostRecentDevice returns the most recently registered device, or nil when there is none.
func MostRecentDevice(devices []*DeviceRegistration) *DeviceRegistration {
	var latest *DeviceRegistration
	for _, device := range devices {
		if device == nil {
			continue
		}
		if latest == nil || device.RegisteredAt().After(latest.RegisteredAt()) {
			latest = device
		}
	}

	return latest
}

// MostRecentTimezone returns the timezone of the most recently registered device that reported one.
func MostRecentTimezone(devices []*DeviceRegistration) string {
	sorted := slices.DeleteFunc(slices.Clone(devices), func(d *DeviceRegistration) bool {
		return d == nil
	})
	slices.SortFunc(sorted, func(a, b *DeviceRegistration) int {
		return b.RegisteredAt().Compare(a.RegisteredAt())
	})
	for _, device := range sorted {
		if device.Timezone != "" {
			return device.Timezone
		}
	}

	return ""
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the read-only view of an account that the notification engine needs.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Display name; the first token is used to greet the user.
	Timezone  string    // Optional timezone hint stored on the account.
	CreatedAt time.Time // Timestamp of when this user account was created.
}

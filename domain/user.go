// Package domain contains core concepts of the music chat system.
// No runtime, storage, or transport logic should be added here.
package domain

import "time"

type UserID string

// SystemSenderID is the reserved identity used for generated announcements.
// It is never registered as a real user and is exempt from membership checks.
const SystemSenderID UserID = "system"

// User is a display profile. There is no deletion and no uniqueness
// constraint on display names.
type User struct {
	ID            UserID
	DisplayName   string
	Avatar        string
	FavoriteGenre string
	Instruments   []string
	Online        bool
	CreatedAt     time.Time
}

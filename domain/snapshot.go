package domain

import "time"

// Snapshot is the immutable, consistent view captured under the service
// guard and handed to persistence. It carries a bounded recent-message
// window per room, never the full log.
type Snapshot struct {
	TakenAt  time.Time
	Users    []User
	Rooms    []RoomSnapshot
	Sessions []CollaborationSession
}

// RoomSnapshot freezes one room: metadata, the join-ordered roster, the
// next sequence number, and the bounded recent window.
type RoomSnapshot struct {
	ID           RoomID
	Name         string
	Description  string
	CreatorID    UserID
	Type         RoomType
	Genre        string
	MaxCapacity  int
	Visibility   Visibility
	PasswordHash string
	CreatedAt    time.Time
	Members      []UserID
	NextSequence uint64
	Recent       []Message
}

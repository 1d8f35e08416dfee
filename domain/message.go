// This file defines Message entities and their typed payloads.
// Messages are immutable once appended to a room log.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageText          MessageType = "text"
	MessageMusic         MessageType = "music"
	MessageLyrics        MessageType = "lyrics"
	MessageSystem        MessageType = "system"
	MessageCollaboration MessageType = "collaboration"
)

// Message is an immutable chat event. Sequence is a monotonic, gapless,
// per-room counter establishing total message order within the room.
type Message struct {
	ID       uuid.UUID
	Room     RoomID
	Sender   UserID
	Type     MessageType
	Content  string
	Payload  Payload
	Sequence uint64
	Language string // ISO 639-1 code detected for text messages, empty otherwise
	At       time.Time
}

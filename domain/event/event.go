// Package event defines the domain events emitted by the chat service
// after each committed mutation. Events are best-effort notifications for
// delivery, indexing, and telemetry; the message log remains the source
// of truth for ordering.
package event

import (
	"time"

	"music-chat/domain"
)

type Type string

const (
	MessagePostedType          Type = "MESSAGE_POSTED"
	UserJoinedType             Type = "USER_JOINED"
	UserLeftType               Type = "USER_LEFT"
	RoomCreatedType            Type = "ROOM_CREATED"
	CollaborationStartedType   Type = "COLLABORATION_STARTED"
	CollaborationJoinedType    Type = "COLLABORATION_JOINED"
	CollaborationCompletedType Type = "COLLABORATION_COMPLETED"
	SnapshotFlushedType        Type = "SNAPSHOT_FLUSHED"
	RestartedAfterPanicType    Type = "WORKER_RESTARTED_AFTER_PANIC"
)

// Event wraps a typed payload with its routing room. A zero Room means
// the event is process-wide (telemetry, snapshots) and is not delivered
// to participant sinks.
type Event struct {
	Type      Type
	Room      domain.RoomID
	CreatedAt time.Time
	Payload   any
}

type MessagePosted struct {
	Message domain.Message
}

type UserJoined struct {
	Room      domain.RoomID
	User      domain.UserID
	Occupancy int
}

type UserLeft struct {
	Room      domain.RoomID
	User      domain.UserID
	Occupancy int
}

type RoomCreated struct {
	Summary domain.RoomSummary
}

type CollaborationStarted struct {
	Session domain.CollaborationSession
}

type CollaborationJoined struct {
	Session domain.SessionID
	Room    domain.RoomID
	User    domain.UserID
}

type CollaborationCompleted struct {
	Session domain.CollaborationSession
}

type SnapshotFlushed struct {
	Rooms    int
	Messages int
	Took     time.Duration
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

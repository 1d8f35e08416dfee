package registry

import (
	"time"

	"github.com/google/uuid"

	"music-chat/domain"
	"music-chat/errors"
)

// MessageLog keeps a bounded, strictly ordered, append-only log per room.
// Sequence numbers are gapless and survive retention trimming: dropping
// old entries never rewinds the counter.
type MessageLog struct {
	retention int
	rooms     map[domain.RoomID]*roomLog
}

type roomLog struct {
	nextSeq uint64
	entries []domain.Message
}

// NewMessageLog caps each room at retention messages. The persisted
// snapshot only ever contains this bounded window, so memory growth
// stays proportional to the number of rooms.
func NewMessageLog(retention int) *MessageLog {
	return &MessageLog{retention: retention, rooms: make(map[domain.RoomID]*roomLog)}
}

// Append assigns the next sequence number for the room and stores the
// message. Membership is validated by the service before this call;
// room existence is re-checked here because the log owns its own index.
func (l *MessageLog) Append(roomID domain.RoomID, sender domain.UserID,
	msgType domain.MessageType, content string, payload domain.Payload,
	language string, now time.Time) (domain.Message, error) {
	log, ok := l.rooms[roomID]
	if !ok {
		return domain.Message{}, errors.ErrRoomNotFound
	}

	log.nextSeq++
	msg := domain.Message{
		ID:       uuid.New(),
		Room:     roomID,
		Sender:   sender,
		Type:     msgType,
		Content:  content,
		Payload:  payload,
		Sequence: log.nextSeq,
		Language: language,
		At:       now,
	}
	log.entries = append(log.entries, msg)
	if len(log.entries) > l.retention {
		// Drop the oldest entries; copy so the backing array does not
		// pin trimmed messages.
		trimmed := make([]domain.Message, l.retention)
		copy(trimmed, log.entries[len(log.entries)-l.retention:])
		log.entries = trimmed
	}
	return msg, nil
}

// Register creates an empty log for a new room.
func (l *MessageLog) Register(roomID domain.RoomID) {
	if _, ok := l.rooms[roomID]; !ok {
		l.rooms[roomID] = &roomLog{}
	}
}

// Recent returns up to limit most recent messages, oldest to newest
// within the returned window. A non-positive limit returns the whole
// retained window.
func (l *MessageLog) Recent(roomID domain.RoomID, limit int) ([]domain.Message, error) {
	log, ok := l.rooms[roomID]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	entries := log.entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]domain.Message, len(entries))
	copy(out, entries)
	return out, nil
}

// NextSequence exposes the counter for snapshotting.
func (l *MessageLog) NextSequence(roomID domain.RoomID) uint64 {
	if log, ok := l.rooms[roomID]; ok {
		return log.nextSeq
	}
	return 0
}

func (l *MessageLog) Restore(roomID domain.RoomID, nextSeq uint64, recent []domain.Message) {
	entries := make([]domain.Message, len(recent))
	copy(entries, recent)
	l.rooms[roomID] = &roomLog{nextSeq: nextSeq, entries: entries}
}

package domain

import "time"

type SessionID string

type CollaborationType string

const (
	CollaborationMusic        CollaborationType = "music"
	CollaborationLyrics       CollaborationType = "lyrics"
	CollaborationCompleteSong CollaborationType = "completeSong"
)

type CollaborationStatus string

const (
	CollaborationActive    CollaborationStatus = "active"
	CollaborationCompleted CollaborationStatus = "completed"
)

// Contribution records one participant action inside a session.
type Contribution struct {
	Author  UserID
	Summary string
	At      time.Time
}

// CollaborationSession is a tracked creative sub-activity nested inside a
// room. The creator is always a participant. The only transition is
// active to completed, triggered by an explicit Complete call.
type CollaborationSession struct {
	ID            SessionID
	Room          RoomID
	CreatorID     UserID
	Title         string
	Type          CollaborationType
	Status        CollaborationStatus
	CreatedAt     time.Time
	participants  []UserID
	Contributions []Contribution
}

func NewCollaborationSession(id SessionID, room RoomID, creator UserID,
	title string, kind CollaborationType, createdAt time.Time) *CollaborationSession {
	return &CollaborationSession{
		ID:           id,
		Room:         room,
		CreatorID:    creator,
		Title:        title,
		Type:         kind,
		Status:       CollaborationActive,
		CreatedAt:    createdAt,
		participants: []UserID{creator},
	}
}

// RestoreCollaborationSession rebuilds a session from persisted state.
func RestoreCollaborationSession(id SessionID, room RoomID, creator UserID,
	title string, kind CollaborationType, status CollaborationStatus,
	createdAt time.Time, participants []UserID, contributions []Contribution) *CollaborationSession {
	s := NewCollaborationSession(id, room, creator, title, kind, createdAt)
	s.Status = status
	for _, p := range participants {
		s.AddParticipant(p)
	}
	s.Contributions = contributions
	return s
}

// Clone returns a deep copy safe to hand outside the guard.
func (s *CollaborationSession) Clone() CollaborationSession {
	cp := *s
	cp.participants = s.Participants()
	cp.Contributions = append([]Contribution(nil), s.Contributions...)
	return cp
}

func (s *CollaborationSession) IsActive() bool {
	return s.Status == CollaborationActive
}

func (s *CollaborationSession) HasParticipant(id UserID) bool {
	for _, p := range s.participants {
		if p == id {
			return true
		}
	}
	return false
}

// AddParticipant reports whether the roster actually changed.
func (s *CollaborationSession) AddParticipant(id UserID) bool {
	if s.HasParticipant(id) {
		return false
	}
	s.participants = append(s.participants, id)
	return true
}

// Participants returns the roster in join order. The slice is a copy.
func (s *CollaborationSession) Participants() []UserID {
	out := make([]UserID, len(s.participants))
	copy(out, s.participants)
	return out
}

func (s *CollaborationSession) Record(author UserID, summary string, at time.Time) {
	s.Contributions = append(s.Contributions, Contribution{Author: author, Summary: summary, At: at})
}

package registry

import (
	"time"

	"github.com/google/uuid"

	"music-chat/domain"
	"music-chat/errors"
)

// CollaborationTracker tracks creative sessions nested inside rooms.
type CollaborationTracker struct {
	sessions map[domain.SessionID]*domain.CollaborationSession
	byRoom   map[domain.RoomID][]domain.SessionID
}

func NewCollaborationTracker() *CollaborationTracker {
	return &CollaborationTracker{
		sessions: make(map[domain.SessionID]*domain.CollaborationSession),
		byRoom:   make(map[domain.RoomID][]domain.SessionID),
	}
}

// Start opens an active session with the creator as sole participant.
// Room membership of the creator is validated by the service.
func (t *CollaborationTracker) Start(creator domain.UserID, roomID domain.RoomID,
	kind domain.CollaborationType, title string, now time.Time) domain.CollaborationSession {
	session := domain.NewCollaborationSession(
		domain.SessionID(uuid.NewString()), roomID, creator, title, kind, now)
	t.sessions[session.ID] = session
	t.byRoom[roomID] = append(t.byRoom[roomID], session.ID)
	return session.Clone()
}

// Join adds the user to an active session. Joining twice is a no-op
// success; joining a completed session fails.
func (t *CollaborationTracker) Join(userID domain.UserID, sessionID domain.SessionID) (joined bool, session domain.CollaborationSession, err error) {
	s, ok := t.sessions[sessionID]
	if !ok {
		return false, domain.CollaborationSession{}, errors.ErrCollaborationNotFound
	}
	if !s.IsActive() {
		return false, domain.CollaborationSession{}, errors.ErrCollaborationInactive
	}
	added := s.AddParticipant(userID)
	return added, s.Clone(), nil
}

// Complete is the terminal transition; completing twice fails with
// ErrCollaborationInactive.
func (t *CollaborationTracker) Complete(sessionID domain.SessionID) (domain.CollaborationSession, error) {
	s, ok := t.sessions[sessionID]
	if !ok {
		return domain.CollaborationSession{}, errors.ErrCollaborationNotFound
	}
	if !s.IsActive() {
		return domain.CollaborationSession{}, errors.ErrCollaborationInactive
	}
	s.Status = domain.CollaborationCompleted
	return s.Clone(), nil
}

func (t *CollaborationTracker) Get(sessionID domain.SessionID) (domain.CollaborationSession, error) {
	s, ok := t.sessions[sessionID]
	if !ok {
		return domain.CollaborationSession{}, errors.ErrCollaborationNotFound
	}
	return s.Clone(), nil
}

// Record appends a contribution entry to an active session.
func (t *CollaborationTracker) Record(sessionID domain.SessionID, author domain.UserID, summary string, now time.Time) error {
	s, ok := t.sessions[sessionID]
	if !ok {
		return errors.ErrCollaborationNotFound
	}
	if !s.IsActive() {
		return errors.ErrCollaborationInactive
	}
	s.Record(author, summary, now)
	return nil
}

// ActiveInRoom returns active sessions in start order.
func (t *CollaborationTracker) ActiveInRoom(roomID domain.RoomID) []domain.CollaborationSession {
	var out []domain.CollaborationSession
	for _, id := range t.byRoom[roomID] {
		if s := t.sessions[id]; s.IsActive() {
			out = append(out, s.Clone())
		}
	}
	return out
}

// Active returns every active session, for snapshotting.
func (t *CollaborationTracker) Active() []domain.CollaborationSession {
	var out []domain.CollaborationSession
	for _, ids := range t.byRoom {
		for _, id := range ids {
			if s := t.sessions[id]; s.IsActive() {
				out = append(out, s.Clone())
			}
		}
	}
	return out
}

func (t *CollaborationTracker) Restore(sessions []domain.CollaborationSession) {
	for _, snap := range sessions {
		if _, ok := t.sessions[snap.ID]; ok {
			continue
		}
		s := domain.RestoreCollaborationSession(snap.ID, snap.Room,
			snap.CreatorID, snap.Title, snap.Type, snap.Status,
			snap.CreatedAt, snap.Participants(), snap.Contributions)
		t.sessions[s.ID] = s
		t.byRoom[s.Room] = append(t.byRoom[s.Room], s.ID)
	}
}

package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"music-chat/domain"
	"music-chat/errors"
)

func Test_Start_Makes_Creator_Sole_Participant(t *testing.T) {
	req := require.New(t)
	tracker := NewCollaborationTracker()

	session := tracker.Start("alice", "jazz", domain.CollaborationMusic, "Night Train", time.Now().UTC())
	req.True(session.IsActive())
	req.Equal([]domain.UserID{"alice"}, session.Participants())
}

func Test_Join_Active_Session(t *testing.T) {
	req := require.New(t)
	tracker := NewCollaborationTracker()
	session := tracker.Start("alice", "jazz", domain.CollaborationLyrics, "Verse One", time.Now().UTC())

	joined, got, err := tracker.Join("bob", session.ID)
	req.NoError(err)
	req.True(joined)
	req.Equal([]domain.UserID{"alice", "bob"}, got.Participants())

	// Joining again changes nothing.
	joined, got, err = tracker.Join("bob", session.ID)
	req.NoError(err)
	req.False(joined)
	req.Len(got.Participants(), 2)
}

func Test_Complete_Is_Terminal(t *testing.T) {
	req := require.New(t)
	tracker := NewCollaborationTracker()
	session := tracker.Start("alice", "jazz", domain.CollaborationMusic, "Night Train", time.Now().UTC())

	completed, err := tracker.Complete(session.ID)
	req.NoError(err)
	req.Equal(domain.CollaborationCompleted, completed.Status)

	_, err = tracker.Complete(session.ID)
	req.ErrorIs(err, errors.ErrCollaborationInactive)

	joined, _, err := tracker.Join("bob", session.ID)
	req.ErrorIs(err, errors.ErrCollaborationInactive)
	req.False(joined)
}

func Test_Join_Unknown_Session(t *testing.T) {
	req := require.New(t)
	tracker := NewCollaborationTracker()

	_, _, err := tracker.Join("bob", "missing")
	req.ErrorIs(err, errors.ErrCollaborationNotFound)
}

func Test_ActiveInRoom_Excludes_Completed(t *testing.T) {
	req := require.New(t)
	tracker := NewCollaborationTracker()
	first := tracker.Start("alice", "jazz", domain.CollaborationMusic, "One", time.Now().UTC())
	second := tracker.Start("alice", "jazz", domain.CollaborationLyrics, "Two", time.Now().UTC())
	tracker.Start("alice", "rock", domain.CollaborationMusic, "Elsewhere", time.Now().UTC())

	_, err := tracker.Complete(first.ID)
	req.NoError(err)

	active := tracker.ActiveInRoom("jazz")
	req.Len(active, 1)
	req.Equal(second.ID, active[0].ID)
}

func Test_Clone_Isolates_Caller_From_Tracker_State(t *testing.T) {
	req := require.New(t)
	tracker := NewCollaborationTracker()
	session := tracker.Start("alice", "jazz", domain.CollaborationMusic, "Night Train", time.Now().UTC())

	joined, _, err := tracker.Join("bob", session.ID)
	req.NoError(err)
	req.True(joined)

	// The copy handed out at start does not see later mutations.
	req.Equal([]domain.UserID{"alice"}, session.Participants())
}

func Test_Collaboration_Restore_Round_Trip(t *testing.T) {
	req := require.New(t)
	tracker := NewCollaborationTracker()
	session := tracker.Start("alice", "jazz", domain.CollaborationCompleteSong, "Full Song", time.Now().UTC())
	joined, _, err := tracker.Join("bob", session.ID)
	req.NoError(err)
	req.True(joined)
	req.NoError(tracker.Record(session.ID, "bob", "joined the session", time.Now().UTC()))

	restored := NewCollaborationTracker()
	restored.Restore(tracker.Active())

	got, err := restored.Get(session.ID)
	req.NoError(err)
	req.True(got.IsActive())
	req.Equal([]domain.UserID{"alice", "bob"}, got.Participants())
	req.Len(got.Contributions, 1)
}

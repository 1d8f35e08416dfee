package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"music-chat/domain"
	"music-chat/errors"
)

func newTestRepository(t *testing.T) *SnapshotRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshotRepository(db, slog.Default())
}

func sampleSnapshot(takenAt time.Time) domain.Snapshot {
	session := domain.NewCollaborationSession("session-1", "room-jazz", "user-alice",
		"Night Train", domain.CollaborationMusic, takenAt)
	session.AddParticipant("user-bob")
	session.Record("user-bob", "joined the session", takenAt)

	return domain.Snapshot{
		TakenAt: takenAt,
		Users: []domain.User{{
			ID:            "user-alice",
			DisplayName:   "Alice",
			FavoriteGenre: "jazz",
			Instruments:   []string{"piano", "voice"},
			Online:        true,
			CreatedAt:     takenAt,
		}, {
			ID:          "user-bob",
			DisplayName: "Bob",
			CreatedAt:   takenAt,
		}},
		Rooms: []domain.RoomSnapshot{{
			ID:           "room-jazz",
			Name:         "Jazz Lounge",
			CreatorID:    "user-alice",
			Type:         domain.RoomJamSession,
			Genre:        "jazz",
			MaxCapacity:  30,
			Visibility:   domain.VisibilityPublic,
			CreatedAt:    takenAt,
			Members:      []domain.UserID{"user-alice", "user-bob"},
			NextSequence: 42,
			Recent: []domain.Message{{
				ID:       uuid.New(),
				Room:     "room-jazz",
				Sender:   "user-alice",
				Type:     domain.MessageText,
				Content:  "how about a slow blues in G",
				Payload:  domain.TextPayload{},
				Sequence: 41,
				Language: "en",
				At:       takenAt,
			}, {
				ID:      uuid.New(),
				Room:    "room-jazz",
				Sender:  "user-bob",
				Type:    domain.MessageMusic,
				Content: "something like this",
				Payload: domain.MusicPayload{
					Melody: []string{"G", "Bb", "D"},
					Rhythm: []string{"quarter", "quarter", "half"},
					Chords: []string{"G7", "C7"},
				},
				Sequence: 42,
				Language: "",
				At:       takenAt,
			}},
		}},
		Sessions: []domain.CollaborationSession{session.Clone()},
	}
}

func Test_Store_Then_Load_Round_Trip(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)
	takenAt := time.Now().UTC().Truncate(time.Microsecond)

	req.NoError(repository.Store(sampleSnapshot(takenAt)))

	loaded, err := repository.Load()
	req.NoError(err)
	req.Equal(takenAt, loaded.TakenAt)
	req.Len(loaded.Users, 2)
	req.Len(loaded.Rooms, 1)
	req.Len(loaded.Sessions, 1)

	room := loaded.Rooms[0]
	req.Equal(domain.RoomID("room-jazz"), room.ID)
	req.Equal([]domain.UserID{"user-alice", "user-bob"}, room.Members)
	req.Equal(uint64(42), room.NextSequence)
	req.Len(room.Recent, 2)
	req.Equal(uint64(41), room.Recent[0].Sequence)

	music, ok := room.Recent[1].Payload.(domain.MusicPayload)
	req.True(ok)
	req.Equal([]string{"G", "Bb", "D"}, music.Melody)
	req.Equal([]string{"quarter", "quarter", "half"}, music.Rhythm)

	session := loaded.Sessions[0]
	req.Equal(domain.SessionID("session-1"), session.ID)
	req.Equal([]domain.UserID{"user-alice", "user-bob"}, session.Participants())
	req.Len(session.Contributions, 1)
	req.True(session.IsActive())
}

func Test_Load_Without_Snapshot(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	_, err := repository.Load()
	req.ErrorIs(err, errors.ErrSnapshotMissing)
}

func Test_Store_Replaces_Previous_Snapshot(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)
	takenAt := time.Now().UTC().Truncate(time.Microsecond)

	req.NoError(repository.Store(sampleSnapshot(takenAt)))

	// A later capture with fewer users must not leave stale records behind.
	later := domain.Snapshot{
		TakenAt: takenAt.Add(time.Minute),
		Users:   []domain.User{{ID: "user-clara", DisplayName: "Clara", CreatedAt: takenAt}},
	}
	req.NoError(repository.Store(later))

	loaded, err := repository.Load()
	req.NoError(err)
	req.Len(loaded.Users, 1)
	req.Equal(domain.UserID("user-clara"), loaded.Users[0].ID)
	req.Empty(loaded.Rooms)
	req.Empty(loaded.Sessions)
}

func Test_Load_Preserves_Room_Creation_Order(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)
	takenAt := time.Now().UTC().Truncate(time.Microsecond)

	snapshot := domain.Snapshot{TakenAt: takenAt}
	names := []string{"Zebra", "Alpha", "Middle"}
	for i, name := range names {
		snapshot.Rooms = append(snapshot.Rooms, domain.RoomSnapshot{
			ID:          domain.RoomID(uuid.NewString()),
			Name:        name,
			CreatorID:   "user-alice",
			Type:        domain.RoomGeneral,
			MaxCapacity: 10 + i,
			Visibility:  domain.VisibilityPublic,
			CreatedAt:   takenAt,
		})
	}
	req.NoError(repository.Store(snapshot))

	loaded, err := repository.Load()
	req.NoError(err)
	req.Len(loaded.Rooms, 3)
	for i, name := range names {
		req.Equal(name, loaded.Rooms[i].Name)
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=../mocks/mock_snapshot_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"

	"music-chat/domain"
	"music-chat/errors"
)

// Key layout inside BadgerDB:
//
//	snap:meta                      capture timestamp
//	snap:user:{userID}             one record per user profile
//	snap:room:{index:06d}:{roomID} room + roster + bounded recent window,
//	                               index preserves creation order on scan
//	snap:collab:{roomID}:{sessionID}
//
// Store replaces the previous snapshot wholesale; the store never holds
// more than the latest bounded capture.
const (
	metaKey      = "snap:meta"
	userPrefix   = "snap:user:"
	roomPrefix   = "snap:room:"
	collabPrefix = "snap:collab:"
	snapPrefix   = "snap:"
)

type ISnapshotRepository interface {
	Store(snapshot domain.Snapshot) error
	Load() (domain.Snapshot, error)
}

type SnapshotRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSnapshotRepository(db *badger.DB, log *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, log: log}
}

// Store persists the captured snapshot. It runs outside the service
// guard on an immutable copy, so a slow disk never blocks chat calls.
func (r *SnapshotRepository) Store(snapshot domain.Snapshot) error {
	if err := r.db.DropPrefix([]byte(snapPrefix)); err != nil {
		return fmt.Errorf("dropping previous snapshot: %w", err)
	}

	wb := r.db.NewWriteBatch()
	defer wb.Cancel()

	meta, err := cbor.Marshal(metaRecord{TakenAt: snapshot.TakenAt.UnixNano()})
	if err != nil {
		return err
	}
	if err := wb.Set([]byte(metaKey), meta); err != nil {
		return err
	}

	for _, user := range snapshot.Users {
		data, err := cbor.Marshal(fromUser(user))
		if err != nil {
			return err
		}
		if err := wb.Set([]byte(userPrefix+string(user.ID)), data); err != nil {
			return err
		}
	}

	for i, room := range snapshot.Rooms {
		data, err := cbor.Marshal(fromRoomSnapshot(room))
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%s%06d:%s", roomPrefix, i, room.ID)
		if err := wb.Set([]byte(key), data); err != nil {
			return err
		}
	}

	for _, session := range snapshot.Sessions {
		data, err := cbor.Marshal(fromSession(session))
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%s%s:%s", collabPrefix, session.Room, session.ID)
		if err := wb.Set([]byte(key), data); err != nil {
			return err
		}
	}

	return wb.Flush()
}

// Load rebuilds the latest snapshot, or ErrSnapshotMissing when the
// store holds none.
func (r *SnapshotRepository) Load() (domain.Snapshot, error) {
	var snapshot domain.Snapshot

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if err == badger.ErrKeyNotFound {
			return errors.ErrSnapshotMissing
		}
		if err != nil {
			return err
		}
		var meta metaRecord
		if err := item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &meta)
		}); err != nil {
			return err
		}
		snapshot.TakenAt = time.Unix(0, meta.TakenAt).UTC()

		if err := scanPrefix(txn, userPrefix, func(val []byte) error {
			var rec userRecord
			if err := cbor.Unmarshal(val, &rec); err != nil {
				return err
			}
			snapshot.Users = append(snapshot.Users, toUser(rec))
			return nil
		}); err != nil {
			return err
		}

		if err := scanPrefix(txn, roomPrefix, func(val []byte) error {
			var rec roomRecord
			if err := cbor.Unmarshal(val, &rec); err != nil {
				return err
			}
			room, err := toRoomSnapshot(rec)
			if err != nil {
				return err
			}
			snapshot.Rooms = append(snapshot.Rooms, room)
			return nil
		}); err != nil {
			return err
		}

		return scanPrefix(txn, collabPrefix, func(val []byte) error {
			var rec collabRecord
			if err := cbor.Unmarshal(val, &rec); err != nil {
				return err
			}
			snapshot.Sessions = append(snapshot.Sessions, toSession(rec))
			return nil
		})
	})
	if err != nil {
		return domain.Snapshot{}, err
	}

	r.log.Debug("Snapshot loaded",
		"taken_at", snapshot.TakenAt,
		"users", len(snapshot.Users),
		"rooms", len(snapshot.Rooms),
		"sessions", len(snapshot.Sessions))
	return snapshot, nil
}

func scanPrefix(txn *badger.Txn, prefix string, visit func(val []byte) error) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		if err := it.Item().Value(visit); err != nil {
			return err
		}
	}
	return nil
}

// ----- CBOR records -----

type metaRecord struct {
	TakenAt int64 `cbor:"taken_at"`
}

type userRecord struct {
	ID            string   `cbor:"id"`
	DisplayName   string   `cbor:"name"`
	Avatar        string   `cbor:"avatar,omitempty"`
	FavoriteGenre string   `cbor:"genre,omitempty"`
	Instruments   []string `cbor:"instruments,omitempty"`
	Online        bool     `cbor:"online"`
	CreatedAt     int64    `cbor:"created_at"`
}

type roomRecord struct {
	ID           string          `cbor:"id"`
	Name         string          `cbor:"name"`
	Description  string          `cbor:"description,omitempty"`
	CreatorID    string          `cbor:"creator"`
	Type         string          `cbor:"type"`
	Genre        string          `cbor:"genre,omitempty"`
	MaxCapacity  int             `cbor:"max_capacity"`
	Visibility   string          `cbor:"visibility"`
	PasswordHash string          `cbor:"password_hash,omitempty"`
	CreatedAt    int64           `cbor:"created_at"`
	Members      []string        `cbor:"members"`
	NextSequence uint64          `cbor:"next_seq"`
	Recent       []messageRecord `cbor:"recent"`
}

type messageRecord struct {
	ID       string        `cbor:"id"`
	Sender   string        `cbor:"sender"`
	Type     string        `cbor:"type"`
	Content  string        `cbor:"content"`
	Payload  payloadRecord `cbor:"payload"`
	Sequence uint64        `cbor:"seq"`
	Language string        `cbor:"lang,omitempty"`
	At       int64         `cbor:"at"`
}

// payloadRecord is the serialized form of the message payload variants.
// Exactly one pointer is set, matching the message type.
type payloadRecord struct {
	Music  *musicRecord  `cbor:"music,omitempty"`
	Lyrics *lyricsRecord `cbor:"lyrics,omitempty"`
	System *systemRecord `cbor:"system,omitempty"`
	Collab *collabRef    `cbor:"collab,omitempty"`
}

type musicRecord struct {
	Melody []string `cbor:"melody,omitempty"`
	Rhythm []string `cbor:"rhythm,omitempty"`
	Chords []string `cbor:"chords,omitempty"`
}

type lyricsRecord struct {
	Lines       []string `cbor:"lines,omitempty"`
	RhymeScheme string   `cbor:"rhyme_scheme,omitempty"`
}

type systemRecord struct {
	EventKind string `cbor:"event_kind"`
}

type collabRef struct {
	SessionID string `cbor:"session_id"`
	EventKind string `cbor:"event_kind,omitempty"`
}

type collabRecord struct {
	ID            string          `cbor:"id"`
	Room          string          `cbor:"room"`
	CreatorID     string          `cbor:"creator"`
	Title         string          `cbor:"title"`
	Type          string          `cbor:"type"`
	Status        string          `cbor:"status"`
	CreatedAt     int64           `cbor:"created_at"`
	Participants  []string        `cbor:"participants"`
	Contributions []contribRecord `cbor:"contributions,omitempty"`
}

type contribRecord struct {
	Author  string `cbor:"author"`
	Summary string `cbor:"summary"`
	At      int64  `cbor:"at"`
}

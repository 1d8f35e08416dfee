package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"music-chat/domain"
)

func newTestIndex(t *testing.T) *MessageIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewMessageIndex(writer, slog.Default())
}

func textMessage(room domain.RoomID, sender domain.UserID, content string, seq uint64) domain.Message {
	return domain.Message{
		ID:       uuid.New(),
		Room:     room,
		Sender:   sender,
		Type:     domain.MessageText,
		Content:  content,
		Payload:  domain.TextPayload{},
		Sequence: seq,
		Language: "en",
		At:       time.Now().UTC(),
	}
}

func Test_Search_Finds_Matching_Content(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	req.NoError(index.Index(textMessage("jazz", "alice", "anyone up for a saxophone duet", 1)))
	req.NoError(index.Index(textMessage("jazz", "bob", "working on a new bassline", 2)))

	hits, err := index.Search(context.Background(), "jazz", "saxophone", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("anyone up for a saxophone duet", hits[0].Content)
	req.Equal(domain.UserID("alice"), hits[0].Sender)
	req.Equal(uint64(1), hits[0].Sequence)
}

func Test_Search_Is_Scoped_To_Room(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	req.NoError(index.Index(textMessage("jazz", "alice", "saxophone practice tonight", 1)))
	req.NoError(index.Index(textMessage("rock", "bob", "saxophone solo in a rock song", 1)))

	hits, err := index.Search(context.Background(), "jazz", "saxophone", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(domain.RoomID("jazz"), hits[0].Room)
}

func Test_System_Messages_Are_Not_Indexed(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	msg := textMessage("jazz", domain.SystemSenderID, "alice joined", 1)
	msg.Type = domain.MessageSystem
	msg.Payload = domain.SystemPayload{EventKind: domain.SystemUserJoined}
	req.NoError(index.Index(msg))

	hits, err := index.Search(context.Background(), "jazz", "joined", 10)
	req.NoError(err)
	req.Empty(hits)
}

func Test_Search_No_Match(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	req.NoError(index.Index(textMessage("jazz", "alice", "late night jam", 1)))

	hits, err := index.Search(context.Background(), "jazz", "accordion", 10)
	req.NoError(err)
	req.Empty(hits)
}

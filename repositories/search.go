//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_message_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"

	"music-chat/domain"
)

type IMessageIndex interface {
	Index(msg domain.Message) error
	Search(ctx context.Context, roomID domain.RoomID, terms string, limit int) ([]MessageHit, error)
}

// MessageIndex maintains a Bluge full-text index over message content.
// Indexing happens asynchronously through the event fanout, so the index
// trails the in-memory log slightly; it is a search accelerator, not the
// source of truth.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// MessageHit is one search result, rebuilt from stored fields.
type MessageHit struct {
	MessageID string
	Room      domain.RoomID
	Sender    domain.UserID
	Content   string
	Sequence  uint64
	At        time.Time
	Score     float64
}

// Index upserts one message document. System announcements are skipped;
// only user-authored content is searchable.
func (m *MessageIndex) Index(msg domain.Message) error {
	if msg.Type == domain.MessageSystem {
		return nil
	}

	doc := bluge.NewDocument(msg.ID.String()).
		AddField(bluge.NewKeywordField("room", string(msg.Room)).StoreValue()).
		AddField(bluge.NewKeywordField("sender", string(msg.Sender)).StoreValue()).
		AddField(bluge.NewTextField("content", msg.Content).StoreValue()).
		AddField(bluge.NewKeywordField("seq", strconv.FormatUint(msg.Sequence, 10)).StoreValue()).
		AddField(bluge.NewDateTimeField("at", msg.At).StoreValue())

	return m.writer.Update(doc.ID(), doc)
}

// Search runs a match query on content, scoped to one room, returning
// the best-scoring hits first.
func (m *MessageIndex) Search(ctx context.Context, roomID domain.RoomID, terms string, limit int) ([]MessageHit, error) {
	reader, err := m.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			m.log.Warn("Closing index reader failed", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("content")).
		AddMust(bluge.NewTermQuery(string(roomID)).SetField("room"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("searching messages: %w", err)
	}

	var hits []MessageHit
	for match, err := iterator.Next(); match != nil; match, err = iterator.Next() {
		if err != nil {
			return nil, err
		}

		hit := MessageHit{Score: match.Score}
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID = string(value)
			case "room":
				hit.Room = domain.RoomID(value)
			case "sender":
				hit.Sender = domain.UserID(value)
			case "content":
				hit.Content = string(value)
			case "seq":
				if seq, err := strconv.ParseUint(string(value), 10, 64); err == nil {
					hit.Sequence = seq
				}
			case "at":
				if at, err := bluge.DecodeDateTime(value); err == nil {
					hit.At = at
				}
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

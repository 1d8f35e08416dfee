// Package sink contains the event consumers fed by the fanout worker.
package sink

import (
	"context"
	"fmt"
	"log/slog"

	"music-chat/domain/event"
	"music-chat/repositories"
)

// SearchSink feeds posted messages into the full-text index.
type SearchSink struct {
	index repositories.IMessageIndex
	log   *slog.Logger
}

func NewSearchSink(index repositories.IMessageIndex, log *slog.Logger) SearchSink {
	return SearchSink{index: index, log: log}
}

func (s SearchSink) Consume(_ context.Context, e event.Event) error {
	switch evt := e.Payload.(type) {
	case event.MessagePosted:
		return s.index.Index(evt.Message)
	default:
		s.log.Debug(fmt.Sprintf("Ignored event : %v", e.Type))
		return nil
	}
}

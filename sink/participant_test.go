package sink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"music-chat/domain/event"
)

func Test_ParticipantSink_Buffers_Events(t *testing.T) {
	req := require.New(t)
	s := NewParticipantSink(2)

	req.NoError(s.Consume(context.Background(), event.Event{Type: event.MessagePostedType}))
	req.NoError(s.Consume(context.Background(), event.Event{Type: event.UserJoinedType}))

	req.Equal(event.MessagePostedType, (<-s.Events).Type)
	req.Equal(event.UserJoinedType, (<-s.Events).Type)
}

func Test_ParticipantSink_Drops_When_Full(t *testing.T) {
	req := require.New(t)
	s := NewParticipantSink(1)

	req.NoError(s.Consume(context.Background(), event.Event{Type: event.MessagePostedType}))
	// The second event is dropped silently; the fanout never blocks.
	req.NoError(s.Consume(context.Background(), event.Event{Type: event.UserJoinedType}))

	req.Len(s.Events, 1)
	req.Equal(event.MessagePostedType, (<-s.Events).Type)
}

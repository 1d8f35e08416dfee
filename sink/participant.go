package sink

import (
	"context"

	"music-chat/domain/event"
)

// ParticipantSink buffers events for one connected participant. The
// transport layer owns the draining side: it reads Events and pushes
// them down the wire. A full buffer drops the event rather than apply
// backpressure to the fanout; a lagging client misses notifications but
// can always re-fetch the room log.
type ParticipantSink struct {
	Events chan event.Event
}

func NewParticipantSink(bufferSize int) *ParticipantSink {
	return &ParticipantSink{Events: make(chan event.Event, bufferSize)}
}

func (s *ParticipantSink) Consume(_ context.Context, e event.Event) error {
	select {
	case s.Events <- e:
	default:
		// Buffer full, the event is dropped for this participant.
	}
	return nil
}

package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"music-chat/domain/event"
	chatruntime "music-chat/runtime"
)

type recordingSink struct {
	mu       sync.Mutex
	consumed []event.Event
	notify   chan struct{}
}

func newRecordingSink(expected int) *recordingSink {
	return &recordingSink{notify: make(chan struct{}, expected)}
}

func (s *recordingSink) Consume(_ context.Context, evt event.Event) error {
	s.mu.Lock()
	s.consumed = append(s.consumed, evt)
	s.mu.Unlock()
	s.notify <- struct{}{}
	return nil
}

func (s *recordingSink) events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.consumed...)
}

type stuckSink struct{}

func (stuckSink) Consume(ctx context.Context, _ event.Event) error {
	<-ctx.Done()
	return ctx.Err()
}

func Test_Fanout_Delivers_To_Permanent_And_Room_Sinks(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	events := make(chan event.Event, 10)
	telemetry := make(chan event.Event, 10)
	connections := chatruntime.NewConnectionRegistry()

	permanent := newRecordingSink(2)
	jazzListener := newRecordingSink(1)
	rockListener := newRecordingSink(1)
	connections.Subscribe("alice", "jazz", jazzListener)
	connections.Subscribe("bob", "rock", rockListener)

	fanout := NewEventFanout(log, events, telemetry, connections, time.Second).Add(permanent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- event.Event{Type: event.MessagePostedType, Room: "jazz", CreatedAt: time.Now().UTC()}

	select {
	case <-jazzListener.notify:
	case <-time.After(time.Second):
		req.Fail("room listener never received the event")
	}
	select {
	case <-permanent.notify:
	case <-time.After(time.Second):
		req.Fail("permanent sink never received the event")
	}

	req.Len(jazzListener.events(), 1)
	req.Empty(rockListener.events())

	// The event is forwarded to telemetry after fanning out.
	select {
	case evt := <-telemetry:
		req.Equal(event.MessagePostedType, evt.Type)
	case <-time.After(time.Second):
		req.Fail("telemetry never received the event")
	}
}

func Test_Fanout_Roomless_Events_Skip_Participants(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	events := make(chan event.Event, 10)
	telemetry := make(chan event.Event, 10)
	connections := chatruntime.NewConnectionRegistry()

	permanent := newRecordingSink(1)
	listener := newRecordingSink(1)
	connections.Subscribe("alice", "jazz", listener)

	fanout := NewEventFanout(log, events, telemetry, connections, time.Second).Add(permanent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- event.Event{Type: event.SnapshotFlushedType, CreatedAt: time.Now().UTC()}

	select {
	case <-permanent.notify:
	case <-time.After(time.Second):
		req.Fail("permanent sink never received the event")
	}
	req.Empty(listener.events())
}

func Test_Fanout_Cuts_Off_Stuck_Sink(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	events := make(chan event.Event, 10)
	telemetry := make(chan event.Event, 10)
	connections := chatruntime.NewConnectionRegistry()

	healthy := newRecordingSink(1)
	fanout := NewEventFanout(log, events, telemetry, connections, 20*time.Millisecond).
		Add(stuckSink{}, healthy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- event.Event{Type: event.MessagePostedType, Room: "jazz", CreatedAt: time.Now().UTC()}

	// The stuck sink times out and the pipeline moves on.
	select {
	case <-healthy.notify:
	case <-time.After(time.Second):
		req.Fail("pipeline stalled behind the stuck sink")
	}
}

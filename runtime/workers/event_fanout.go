package workers

import (
	"context"
	"log/slog"
	"time"

	"music-chat/contract"
	"music-chat/domain/event"
)

// EventFanout broadcasts domain events to in-process consumers: the
// permanent sinks (search index, disk, telemetry) and the connected
// participants of the event's room.
//
// Delivery is best-effort with no ordering, durability, or retry
// guarantees; the message log remains the source of truth. A slow sink
// is cut off by the per-delivery timeout so one stuck consumer cannot
// stall the pipeline.
type EventFanout struct {
	log         *slog.Logger
	events      chan event.Event
	telemetry   chan event.Event
	connections contract.IConnectionRegistry
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, events, telemetry chan event.Event,
	connections contract.IConnectionRegistry, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		events:      events,
		telemetry:   telemetry,
		connections: connections,
		sinkTimeout: sinkTimeout,
	}
}

// Add appends permanent sinks receiving every event regardless of room.
func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt := <-w.events:
			w.fanout(ctx, evt)
			select {
			case w.telemetry <- evt:
			default:
				w.log.Debug("Telemetry event lost", "type", evt.Type)
			}
		}
	}
}

func (w *EventFanout) fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.sinks {
		w.deliver(ctx, sink, evt)
	}
	if evt.Room == "" {
		return
	}
	for _, sink := range w.connections.SinksFor(evt.Room) {
		w.deliver(ctx, sink, evt)
	}
}

func (w *EventFanout) deliver(ctx context.Context, sink contract.EventSink, evt event.Event) {
	deliveryCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()
	if err := sink.Consume(deliveryCtx, evt); err != nil {
		w.log.Warn("Sink rejected event", "type", evt.Type, "error", err)
	}
}

package workers

import (
	"context"
	"log/slog"
	"time"

	"music-chat/domain/event"
	"music-chat/observability"
)

// TelemetryWorker drains the telemetry channel into the stats counters
// and periodically logs a stats view. Losing telemetry events is
// acceptable; they are sampled metrics, not domain state.
type TelemetryWorker struct {
	log         *slog.Logger
	telemetry   chan event.Event
	stats       *observability.ChatStats
	logInterval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, telemetry chan event.Event,
	stats *observability.ChatStats, logInterval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{
		log:         log,
		telemetry:   telemetry,
		stats:       stats,
		logInterval: logInterval,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.logInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case evt := <-w.telemetry:
			w.count(evt)
		case <-ticker.C:
			view := w.stats.View()
			w.log.Info("Chat stats",
				"messages", view.MessagesPosted,
				"rooms", view.RoomsCreated,
				"joins", view.JoinsAccepted,
				"censored", view.CensoredMessages,
				"active_collaborations", view.CollaborationsOpen,
				"snapshot_flushes", view.SnapshotFlushes)
		}
	}
}

func (w *TelemetryWorker) count(evt event.Event) {
	switch evt.Type {
	case event.MessagePostedType:
		w.stats.IncrMessagesPosted()
	case event.RoomCreatedType:
		w.stats.IncrRoomsCreated()
	case event.UserJoinedType:
		w.stats.IncrJoinsAccepted()
	case event.UserLeftType:
		w.stats.IncrLeaves()
	case event.CollaborationStartedType:
		w.stats.AddCollaborations(1)
	case event.CollaborationCompletedType:
		w.stats.AddCollaborations(-1)
	case event.SnapshotFlushedType:
		w.stats.IncrSnapshotFlushes()
	case event.RestartedAfterPanicType:
		w.stats.IncrWorkerRestarts()
	}
}

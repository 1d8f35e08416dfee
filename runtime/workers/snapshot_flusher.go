package workers

import (
	"context"
	"log/slog"
	"time"

	"music-chat/contract"
	"music-chat/domain/event"
)

// SnapshotFlusher periodically persists a consistent snapshot of the
// chat state. The capture happens under the service guard; the disk
// write runs here, outside any lock, on the captured copy.
//
// Persistence is best-effort: a failed flush is logged and the node
// keeps serving from memory. The flusher stops cleanly when the
// supervision context is canceled.
type SnapshotFlusher struct {
	log       *slog.Logger
	source    contract.ISnapshotSource
	store     contract.ISnapshotStore
	telemetry chan event.Event
	interval  time.Duration
}

func NewSnapshotFlusher(log *slog.Logger, source contract.ISnapshotSource,
	store contract.ISnapshotStore, telemetry chan event.Event,
	interval time.Duration) *SnapshotFlusher {
	return &SnapshotFlusher{
		log:       log,
		source:    source,
		store:     store,
		telemetry: telemetry,
		interval:  interval,
	}
}

func (w *SnapshotFlusher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping snapshot flusher")
			return nil
		case <-ticker.C:
			w.Flush(ctx)
		}
	}
}

// Flush captures and persists one snapshot. Errors degrade to
// memory-only operation; they never propagate as worker failures.
func (w *SnapshotFlusher) Flush(ctx context.Context) {
	start := time.Now()

	snapshot, err := w.source.CaptureSnapshot(ctx)
	if err != nil {
		w.log.Warn("Snapshot capture skipped", "error", err)
		return
	}

	if err := w.store.Store(snapshot); err != nil {
		w.log.Error("Snapshot flush failed, staying memory-only", "error", err)
		return
	}

	messages := 0
	for _, room := range snapshot.Rooms {
		messages += len(room.Recent)
	}
	evt := event.Event{
		Type:      event.SnapshotFlushedType,
		CreatedAt: time.Now().UTC(),
		Payload: event.SnapshotFlushed{
			Rooms:    len(snapshot.Rooms),
			Messages: messages,
			Took:     time.Since(start),
		},
	}
	select {
	case w.telemetry <- evt:
	default:
		w.log.Debug("Telemetry event lost", "type", evt.Type)
	}
}

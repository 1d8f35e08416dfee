//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"music-chat/domain"
	"music-chat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself; the supervisor recovers panics and
// restarts it.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// avoiding manual naming in the Worker interface. Used for logging and
// supervision lifecycle events.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes domain events. Implementations must not block
// longer than the context allows; the fanout enforces a delivery timeout.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IConnectionRegistry maps connected participants to their delivery
// sinks. It is the transport boundary: the web/socket layer registers a
// sink per connection and the fanout resolves room audiences through it.
type IConnectionRegistry interface {
	SinksFor(roomID domain.RoomID) []EventSink
	Subscribe(userID domain.UserID, roomID domain.RoomID, sink EventSink)
	Unsubscribe(userID domain.UserID, roomID domain.RoomID)
}

// ISnapshotSource captures a consistent, immutable view of the chat
// state. Capture blocks on the service guard, never on I/O.
type ISnapshotSource interface {
	CaptureSnapshot(ctx context.Context) (domain.Snapshot, error)
}

// ISnapshotStore persists and loads snapshots. Store runs outside any
// lock on an already-captured snapshot.
type ISnapshotStore interface {
	Store(snapshot domain.Snapshot) error
	Load() (domain.Snapshot, error)
}

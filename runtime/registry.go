package runtime

import (
	"sync"

	"music-chat/contract"
	"music-chat/domain"
)

type roomSet map[domain.RoomID]struct{}

// ConnectionRegistry tracks which connected participant listens to which
// room. A participant has one sink per process regardless of how many
// rooms they joined; the sink is dropped only once they left every room.
//
// This registry is independent of the chat state guard: subscriptions
// change on transport connect/disconnect, not on domain mutations, so it
// carries its own lock.
type ConnectionRegistry struct {
	mu       sync.RWMutex
	sinks    map[domain.UserID]contract.EventSink
	rooms    map[domain.UserID]roomSet
	audience map[domain.RoomID]map[domain.UserID]struct{}
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		sinks:    make(map[domain.UserID]contract.EventSink),
		rooms:    make(map[domain.UserID]roomSet),
		audience: make(map[domain.RoomID]map[domain.UserID]struct{}),
	}
}

// SinksFor resolves the delivery sinks of everyone listening to a room.
// Returns nil when nobody is connected.
func (r *ConnectionRegistry) SinksFor(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listeners, ok := r.audience[roomID]
	if !ok {
		return nil
	}
	out := make([]contract.EventSink, 0, len(listeners))
	for userID := range listeners {
		if sink, connected := r.sinks[userID]; connected {
			out = append(out, sink)
		}
	}
	return out
}

// Subscribe registers the participant's sink and adds them to the room
// audience. Re-subscribing replaces the sink, which covers reconnects.
func (r *ConnectionRegistry) Subscribe(userID domain.UserID, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sinks[userID] = sink
	if _, ok := r.rooms[userID]; !ok {
		r.rooms[userID] = make(roomSet)
	}
	r.rooms[userID][roomID] = struct{}{}
	if _, ok := r.audience[roomID]; !ok {
		r.audience[roomID] = make(map[domain.UserID]struct{})
	}
	r.audience[roomID][userID] = struct{}{}
}

// Unsubscribe removes the participant from one room's audience. The sink
// itself is kept while other subscriptions remain, and empty sets are
// cleaned up so the maps do not leak across many short-lived rooms.
func (r *ConnectionRegistry) Unsubscribe(userID domain.UserID, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listeners, ok := r.audience[roomID]; ok {
		delete(listeners, userID)
		if len(listeners) == 0 {
			delete(r.audience, roomID)
		}
	}
	if joined, ok := r.rooms[userID]; ok {
		delete(joined, roomID)
		if len(joined) == 0 {
			delete(r.rooms, userID)
			delete(r.sinks, userID)
		}
	}
}

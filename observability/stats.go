// Package observability aggregates process-local chat telemetry.
package observability

import (
	"sync/atomic"
	"time"
)

// ChatStats holds atomic counters updated by the telemetry worker and
// the moderation path. Counters are cheap enough to bump from hot paths
// without touching the state guard.
type ChatStats struct {
	MessagesPosted     uint64
	RoomsCreated       uint64
	JoinsAccepted      uint64
	Leaves             uint64
	CensoredMessages   uint64
	CollaborationsOpen uint64
	SnapshotFlushes    uint64
	WorkerRestarts     uint64
}

// StatsView is the frozen projection handed to logs and the inspector.
type StatsView struct {
	At                 time.Time `json:"at"`
	MessagesPosted     uint64    `json:"messages_posted"`
	RoomsCreated       uint64    `json:"rooms_created"`
	JoinsAccepted      uint64    `json:"joins_accepted"`
	Leaves             uint64    `json:"leaves"`
	CensoredMessages   uint64    `json:"censored_messages"`
	CollaborationsOpen uint64    `json:"collaborations_open"`
	SnapshotFlushes    uint64    `json:"snapshot_flushes"`
	WorkerRestarts     uint64    `json:"worker_restarts"`
}

func NewChatStats() *ChatStats {
	return &ChatStats{}
}

func (s *ChatStats) IncrMessagesPosted()   { atomic.AddUint64(&s.MessagesPosted, 1) }
func (s *ChatStats) IncrRoomsCreated()     { atomic.AddUint64(&s.RoomsCreated, 1) }
func (s *ChatStats) IncrJoinsAccepted()    { atomic.AddUint64(&s.JoinsAccepted, 1) }
func (s *ChatStats) IncrLeaves()           { atomic.AddUint64(&s.Leaves, 1) }
func (s *ChatStats) IncrCensoredMessages() { atomic.AddUint64(&s.CensoredMessages, 1) }
func (s *ChatStats) IncrSnapshotFlushes()  { atomic.AddUint64(&s.SnapshotFlushes, 1) }
func (s *ChatStats) IncrWorkerRestarts()   { atomic.AddUint64(&s.WorkerRestarts, 1) }

func (s *ChatStats) AddCollaborations(delta int64) {
	atomic.AddUint64(&s.CollaborationsOpen, uint64(delta))
}

func (s *ChatStats) View() StatsView {
	return StatsView{
		At:                 time.Now().UTC(),
		MessagesPosted:     atomic.LoadUint64(&s.MessagesPosted),
		RoomsCreated:       atomic.LoadUint64(&s.RoomsCreated),
		JoinsAccepted:      atomic.LoadUint64(&s.JoinsAccepted),
		Leaves:             atomic.LoadUint64(&s.Leaves),
		CensoredMessages:   atomic.LoadUint64(&s.CensoredMessages),
		CollaborationsOpen: atomic.LoadUint64(&s.CollaborationsOpen),
		SnapshotFlushes:    atomic.LoadUint64(&s.SnapshotFlushes),
		WorkerRestarts:     atomic.LoadUint64(&s.WorkerRestarts),
	}
}

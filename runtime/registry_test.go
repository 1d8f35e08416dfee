package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"music-chat/domain/event"
)

type recordingSink struct {
	consumed []event.Event
}

func (s *recordingSink) Consume(_ context.Context, evt event.Event) error {
	s.consumed = append(s.consumed, evt)
	return nil
}

func Test_SinksFor_Returns_Room_Audience_Only(t *testing.T) {
	req := require.New(t)
	registry := NewConnectionRegistry()
	alice := &recordingSink{}
	bob := &recordingSink{}

	registry.Subscribe("alice", "jazz", alice)
	registry.Subscribe("bob", "rock", bob)

	sinks := registry.SinksFor("jazz")
	req.Len(sinks, 1)
	req.Same(alice, sinks[0])

	req.Nil(registry.SinksFor("empty"))
}

func Test_One_Sink_Across_Multiple_Rooms(t *testing.T) {
	req := require.New(t)
	registry := NewConnectionRegistry()
	alice := &recordingSink{}

	registry.Subscribe("alice", "jazz", alice)
	registry.Subscribe("alice", "rock", alice)

	registry.Unsubscribe("alice", "jazz")
	// Still listening in rock, the sink survives.
	req.Len(registry.SinksFor("rock"), 1)

	registry.Unsubscribe("alice", "rock")
	req.Nil(registry.SinksFor("rock"))
}

func Test_Resubscribe_Replaces_Sink(t *testing.T) {
	req := require.New(t)
	registry := NewConnectionRegistry()
	stale := &recordingSink{}
	fresh := &recordingSink{}

	registry.Subscribe("alice", "jazz", stale)
	registry.Subscribe("alice", "jazz", fresh)

	sinks := registry.SinksFor("jazz")
	req.Len(sinks, 1)
	req.Same(fresh, sinks[0])
}

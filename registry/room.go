package registry

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"music-chat/domain"
	"music-chat/errors"
)

// RoomRegistry owns room metadata and membership. Creation order is
// preserved for listings.
type RoomRegistry struct {
	rooms map[domain.RoomID]*domain.Room
	order []domain.RoomID
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[domain.RoomID]*domain.Room)}
}

func (r *RoomRegistry) Create(cmd domain.CreateRoomCommand, passwordHash string, now time.Time) *domain.Room {
	room := domain.NewRoom(domain.RoomID(uuid.NewString()), cmd.CreatorID,
		cmd.Name, cmd.Description, cmd.Type, cmd.Genre, cmd.MaxCapacity,
		cmd.Visibility, passwordHash, now)
	r.rooms[room.ID] = room
	r.order = append(r.order, room.ID)
	return room
}

func (r *RoomRegistry) Get(id domain.RoomID) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	return room, nil
}

// Join performs the capacity check and roster insert as one step; the
// service guard makes it atomic with respect to concurrent joiners.
// A re-join of an existing member is a no-op success and keeps the
// original roster position. Password verification happens in the
// service, before this call.
func (r *RoomRegistry) Join(userID domain.UserID, roomID domain.RoomID) (joined bool, err error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return false, errors.ErrRoomNotFound
	}
	if room.IsMember(userID) {
		return false, nil
	}
	if room.IsFull() {
		return false, errors.ErrRoomFull
	}
	room.AddMember(userID)
	return true, nil
}

func (r *RoomRegistry) Leave(userID domain.UserID, roomID domain.RoomID) error {
	room, ok := r.rooms[roomID]
	if !ok {
		return errors.ErrRoomNotFound
	}
	if !room.RemoveMember(userID) {
		return errors.ErrNotAMember
	}
	return nil
}

// List returns summaries in creation order.
func (r *RoomRegistry) List() []domain.RoomSummary {
	return lo.Map(r.order, func(id domain.RoomID, _ int) domain.RoomSummary {
		return r.rooms[id].Summary()
	})
}

func (r *RoomRegistry) Members(roomID domain.RoomID) ([]domain.UserID, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	return room.Members(), nil
}

// All freezes every room in creation order for snapshotting.
func (r *RoomRegistry) All() []domain.RoomSnapshot {
	return lo.Map(r.order, func(id domain.RoomID, _ int) domain.RoomSnapshot {
		return r.rooms[id].Freeze()
	})
}

func (r *RoomRegistry) Restore(snaps []domain.RoomSnapshot) {
	for _, snap := range snaps {
		if _, ok := r.rooms[snap.ID]; ok {
			continue
		}
		r.rooms[snap.ID] = domain.RestoreRoom(snap)
		r.order = append(r.order, snap.ID)
	}
}

package domain

import "time"

type RoomID string

type RoomType string

const (
	RoomGeneral       RoomType = "general"
	RoomCollaboration RoomType = "collaboration"
	RoomJamSession    RoomType = "jamSession"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Room scopes membership, message history, and nested collaboration
// sessions. Members are kept in join order for roster display.
// Rooms are never deleted, even when empty.
type Room struct {
	ID           RoomID
	Name         string
	Description  string
	CreatorID    UserID
	Type         RoomType
	Genre        string
	MaxCapacity  int
	Visibility   Visibility
	PasswordHash string
	CreatedAt    time.Time

	members   []UserID
	memberSet map[UserID]struct{}
}

func NewRoom(id RoomID, creator UserID, name, description string,
	roomType RoomType, genre string, maxCapacity int,
	visibility Visibility, passwordHash string, createdAt time.Time) *Room {
	return &Room{
		ID:           id,
		Name:         name,
		Description:  description,
		CreatorID:    creator,
		Type:         roomType,
		Genre:        genre,
		MaxCapacity:  maxCapacity,
		Visibility:   visibility,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		memberSet:    make(map[UserID]struct{}),
	}
}

// RestoreRoom rebuilds a room from a snapshot, re-seeding the roster in
// its original join order.
func RestoreRoom(snap RoomSnapshot) *Room {
	r := NewRoom(snap.ID, snap.CreatorID, snap.Name, snap.Description,
		snap.Type, snap.Genre, snap.MaxCapacity, snap.Visibility,
		snap.PasswordHash, snap.CreatedAt)
	for _, m := range snap.Members {
		r.AddMember(m)
	}
	return r
}

// Freeze copies the room into its snapshot form. Message fields are
// filled in by the message log.
func (r *Room) Freeze() RoomSnapshot {
	return RoomSnapshot{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		CreatorID:    r.CreatorID,
		Type:         r.Type,
		Genre:        r.Genre,
		MaxCapacity:  r.MaxCapacity,
		Visibility:   r.Visibility,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		Members:      r.Members(),
	}
}

func (r *Room) IsMember(id UserID) bool {
	_, ok := r.memberSet[id]
	return ok
}

func (r *Room) Occupancy() int {
	return len(r.members)
}

func (r *Room) IsFull() bool {
	return len(r.members) >= r.MaxCapacity
}

// AddMember appends the user to the roster. Re-adding an existing member is
// a no-op so a re-join keeps the original roster position.
// Reports whether the roster actually changed.
func (r *Room) AddMember(id UserID) bool {
	if r.IsMember(id) {
		return false
	}
	r.members = append(r.members, id)
	r.memberSet[id] = struct{}{}
	return true
}

// RemoveMember reports whether the user was a member.
func (r *Room) RemoveMember(id UserID) bool {
	if !r.IsMember(id) {
		return false
	}
	delete(r.memberSet, id)
	for i, m := range r.members {
		if m == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	return true
}

// Members returns the roster in join order. The slice is a copy.
func (r *Room) Members() []UserID {
	out := make([]UserID, len(r.members))
	copy(out, r.members)
	return out
}

// RoomSummary is the listing projection exposed by ListRooms.
type RoomSummary struct {
	ID          RoomID
	Name        string
	Type        RoomType
	Genre       string
	Occupancy   int
	MaxCapacity int
	Visibility  Visibility
}

func (r *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Genre:       r.Genre,
		Occupancy:   len(r.members),
		MaxCapacity: r.MaxCapacity,
		Visibility:  r.Visibility,
	}
}

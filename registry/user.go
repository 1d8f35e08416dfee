// Package registry holds the in-memory chat state: users, rooms, the
// per-room message log, and collaboration sessions. None of these types
// lock on their own; the owning chat service serializes every access
// behind a single guard so the check-then-mutate paths stay atomic.
package registry

import (
	"time"

	"github.com/google/uuid"

	"music-chat/domain"
	"music-chat/errors"
)

type UserRegistry struct {
	users map[domain.UserID]*domain.User
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{users: make(map[domain.UserID]*domain.User)}
}

// Create always succeeds with a fresh id. Duplicate display names are
// allowed; the source system never enforced uniqueness.
func (r *UserRegistry) Create(cmd domain.CreateUserCommand, now time.Time) domain.User {
	user := domain.User{
		ID:            domain.UserID(uuid.NewString()),
		DisplayName:   cmd.DisplayName,
		Avatar:        cmd.Avatar,
		FavoriteGenre: cmd.FavoriteGenre,
		Instruments:   append([]string(nil), cmd.Instruments...),
		Online:        true,
		CreatedAt:     now,
	}
	r.users[user.ID] = &user
	return user
}

func (r *UserRegistry) Get(id domain.UserID) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, errors.ErrUserNotFound
	}
	return *user, nil
}

func (r *UserRegistry) Has(id domain.UserID) bool {
	_, ok := r.users[id]
	return ok
}

func (r *UserRegistry) SetOnline(id domain.UserID, online bool) {
	if user, ok := r.users[id]; ok {
		user.Online = online
	}
}

// All returns profile copies for snapshotting.
func (r *UserRegistry) All() []domain.User {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		cp.Instruments = append([]string(nil), u.Instruments...)
		out = append(out, cp)
	}
	return out
}

func (r *UserRegistry) Restore(users []domain.User) {
	for _, u := range users {
		cp := u
		r.users[u.ID] = &cp
	}
}

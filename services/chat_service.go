//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"music-chat/auth"
	"music-chat/contract"
	"music-chat/domain"
	"music-chat/domain/event"
	"music-chat/errors"
	"music-chat/moderation"
	"music-chat/observability"
	"music-chat/registry"
	"music-chat/repositories"
	chatruntime "music-chat/runtime"
	"music-chat/sink"
)

type IChatService interface {
	CreateUser(ctx context.Context, cmd domain.CreateUserCommand) (domain.User, error)
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	CreateRoom(ctx context.Context, cmd domain.CreateRoomCommand) (domain.RoomSummary, error)
	JoinRoom(ctx context.Context, cmd domain.JoinRoomCommand) error
	LeaveRoom(ctx context.Context, cmd domain.LeaveRoomCommand) error
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	ShareContent(ctx context.Context, cmd domain.ShareContentCommand) (domain.Message, error)
	StartCollaboration(ctx context.Context, cmd domain.StartCollaborationCommand) (domain.CollaborationSession, error)
	JoinCollaboration(ctx context.Context, cmd domain.JoinCollaborationCommand) (domain.CollaborationSession, error)
	CompleteCollaboration(ctx context.Context, cmd domain.CompleteCollaborationCommand) (domain.CollaborationSession, error)
	ListRooms(ctx context.Context) ([]domain.RoomSummary, error)
	RoomMessages(ctx context.Context, roomID domain.RoomID, limit int) ([]domain.Message, error)
	RoomMembers(ctx context.Context, roomID domain.RoomID) ([]domain.User, error)
	ActiveCollaborations(ctx context.Context, roomID domain.RoomID) ([]domain.CollaborationSession, error)
	SearchMessages(ctx context.Context, roomID domain.RoomID, terms string, limit int) ([]repositories.MessageHit, error)
	Connect(userID domain.UserID, roomID domain.RoomID) *sink.ParticipantSink
	Disconnect(userID domain.UserID, roomID domain.RoomID)
	CaptureSnapshot(ctx context.Context) (domain.Snapshot, error)
	PersistSnapshot(ctx context.Context) error
}

// Options tune the service without widening the constructor further.
type Options struct {
	// GuardTimeout bounds the lock wait of every public call; under
	// contention a call fails fast with ErrGuardTimeout instead of
	// queueing forever.
	GuardTimeout time.Duration
	// SnapshotWindow caps how many recent messages per room a snapshot
	// carries.
	SnapshotWindow int
	// ConnectionBufferSize sizes the per-participant event buffer handed
	// out by Connect.
	ConnectionBufferSize int
}

// ChatService is the facade over all chat state. Every mutation, and
// every read that must see a non-torn view, runs between Acquire and
// Release on the single guard; the guarded section does in-memory work
// only. Events are published after the guard is released.
type ChatService struct {
	log         *slog.Logger
	guard       *chatruntime.Guard
	opts        Options
	users       *registry.UserRegistry
	rooms       *registry.RoomRegistry
	messages    *registry.MessageLog
	collabs     *registry.CollaborationTracker
	moderator   *moderation.Moderator
	index       repositories.IMessageIndex
	store       contract.ISnapshotStore
	connections contract.IConnectionRegistry
	events      chan event.Event
	stats       *observability.ChatStats
	validate    *validator.Validate
}

func NewChatService(log *slog.Logger,
	users *registry.UserRegistry, rooms *registry.RoomRegistry,
	messages *registry.MessageLog, collabs *registry.CollaborationTracker,
	moderator *moderation.Moderator, index repositories.IMessageIndex,
	store contract.ISnapshotStore, connections contract.IConnectionRegistry,
	events chan event.Event, stats *observability.ChatStats, opts Options) *ChatService {
	return &ChatService{
		log:         log,
		guard:       chatruntime.NewGuard(),
		opts:        opts,
		users:       users,
		rooms:       rooms,
		messages:    messages,
		collabs:     collabs,
		moderator:   moderator,
		index:       index,
		store:       store,
		connections: connections,
		events:      events,
		stats:       stats,
		validate:    validator.New(),
	}
}

func (s *ChatService) CreateUser(ctx context.Context, cmd domain.CreateUserCommand) (domain.User, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.User{}, err
	}
	user := s.users.Create(cmd, time.Now().UTC())
	s.guard.Release()

	s.log.Info("User created", "user_id", user.ID, "name", user.DisplayName)
	return user, nil
}

func (s *ChatService) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.User{}, err
	}
	defer s.guard.Release()
	return s.users.Get(id)
}

// CreateRoom fails only when the creator is unknown. The reserved
// system identity may create rooms, which is how default rooms are
// bootstrapped at startup. Password hashing for private rooms happens
// before the guard is taken.
func (s *ChatService) CreateRoom(ctx context.Context, cmd domain.CreateRoomCommand) (domain.RoomSummary, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.RoomSummary{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	var passwordHash string
	if cmd.Visibility == domain.VisibilityPrivate {
		hash, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return domain.RoomSummary{}, fmt.Errorf("hashing room password: %w", err)
		}
		passwordHash = hash
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.RoomSummary{}, err
	}
	if cmd.CreatorID != domain.SystemSenderID && !s.users.Has(cmd.CreatorID) {
		s.guard.Release()
		return domain.RoomSummary{}, errors.ErrUserNotFound
	}
	room := s.rooms.Create(cmd, passwordHash, time.Now().UTC())
	s.messages.Register(room.ID)
	summary := room.Summary()
	s.guard.Release()

	s.publish(event.Event{
		Type:      event.RoomCreatedType,
		Room:      summary.ID,
		CreatedAt: time.Now().UTC(),
		Payload:   event.RoomCreated{Summary: summary},
	})
	s.log.Info("Room created", "room_id", summary.ID, "name", summary.Name, "type", summary.Type)
	return summary, nil
}

// JoinRoom admits the user unless the room is full or the password does
// not match. The capacity check-then-insert is atomic under the guard,
// so concurrent joiners can never overshoot MaxCapacity. Re-joining is
// an idempotent success that keeps the original roster position and
// emits nothing.
//
// Argon2 verification runs outside the guard: the hash is read under
// it, verified unlocked, and the join re-validated on re-entry.
// Password hashes never change after room creation, so the verdict
// cannot go stale in between.
func (s *ChatService) JoinRoom(ctx context.Context, cmd domain.JoinRoomCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return err
	}
	room, err := s.rooms.Get(cmd.Room)
	if err != nil {
		s.guard.Release()
		return err
	}
	user, err := s.users.Get(cmd.UserID)
	if err != nil {
		s.guard.Release()
		return err
	}
	private := room.Visibility == domain.VisibilityPrivate && !room.IsMember(cmd.UserID)
	passwordHash := room.PasswordHash
	s.guard.Release()

	if private {
		ok, err := auth.VerifyPassword(cmd.Password, passwordHash)
		if err != nil || !ok {
			return errors.ErrInvalidPassword
		}
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return err
	}
	joined, err := s.rooms.Join(cmd.UserID, cmd.Room)
	if err != nil {
		s.guard.Release()
		return err
	}
	if !joined {
		s.guard.Release()
		return nil
	}
	occupancy := room.Occupancy()
	events := []event.Event{{
		Type:      event.UserJoinedType,
		Room:      cmd.Room,
		CreatedAt: time.Now().UTC(),
		Payload:   event.UserJoined{Room: cmd.Room, User: cmd.UserID, Occupancy: occupancy},
	}}
	msg, err := s.appendSystem(cmd.Room,
		fmt.Sprintf("%s joined", user.DisplayName),
		domain.SystemPayload{EventKind: domain.SystemUserJoined})
	if err == nil {
		events = append(events, messagePosted(msg))
	}
	s.guard.Release()

	s.publish(events...)
	return nil
}

func (s *ChatService) LeaveRoom(ctx context.Context, cmd domain.LeaveRoomCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return err
	}
	if err := s.rooms.Leave(cmd.UserID, cmd.Room); err != nil {
		s.guard.Release()
		return err
	}
	displayName := string(cmd.UserID)
	if user, err := s.users.Get(cmd.UserID); err == nil {
		displayName = user.DisplayName
	}
	room, _ := s.rooms.Get(cmd.Room)
	events := []event.Event{{
		Type:      event.UserLeftType,
		Room:      cmd.Room,
		CreatedAt: time.Now().UTC(),
		Payload:   event.UserLeft{Room: cmd.Room, User: cmd.UserID, Occupancy: room.Occupancy()},
	}}
	msg, err := s.appendSystem(cmd.Room,
		fmt.Sprintf("%s left", displayName),
		domain.SystemPayload{EventKind: domain.SystemUserLeft})
	if err == nil {
		events = append(events, messagePosted(msg))
	}
	s.guard.Release()

	s.publish(events...)
	return nil
}

// SendMessage appends a text message. Moderation and language detection
// run before the guard is taken; only the membership check and the
// sequenced append happen inside it.
func (s *ChatService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	content, censored := s.moderator.Censor(cmd.Content)
	if len(censored) > 0 {
		s.stats.IncrCensoredMessages()
		s.log.Debug("Message censored", "sender", cmd.Sender, "words", len(censored))
	}
	language := whatlanggo.Detect(content).Lang.Iso6391()

	msg, err := s.append(ctx, cmd.Room, cmd.Sender, domain.MessageText,
		content, domain.TextPayload{}, language)
	if err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

// ShareContent appends generated music or lyrics produced by the
// content generators. The payload kind drives the message type; any
// other kind is rejected before touching state.
func (s *ChatService) ShareContent(ctx context.Context, cmd domain.ShareContentCommand) (domain.Message, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	kind := cmd.Payload.Kind()
	if kind != domain.MessageMusic && kind != domain.MessageLyrics {
		return domain.Message{}, fmt.Errorf("%w: payload kind %q is not shareable", errors.ErrInvalidCommand, kind)
	}

	return s.append(ctx, cmd.Room, cmd.Sender, kind, cmd.Content, cmd.Payload, "")
}

func (s *ChatService) StartCollaboration(ctx context.Context, cmd domain.StartCollaborationCommand) (domain.CollaborationSession, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.CollaborationSession{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.CollaborationSession{}, err
	}
	room, err := s.rooms.Get(cmd.Room)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	creator, err := s.users.Get(cmd.CreatorID)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	if !room.IsMember(cmd.CreatorID) {
		s.guard.Release()
		return domain.CollaborationSession{}, errors.ErrNotAMember
	}
	session := s.collabs.Start(cmd.CreatorID, cmd.Room, cmd.Type, cmd.Title, time.Now().UTC())
	events := []event.Event{{
		Type:      event.CollaborationStartedType,
		Room:      cmd.Room,
		CreatedAt: time.Now().UTC(),
		Payload:   event.CollaborationStarted{Session: session},
	}}
	msg, err := s.appendSystem(cmd.Room,
		fmt.Sprintf("%s started a %s collaboration: %s", creator.DisplayName, session.Type, session.Title),
		domain.CollaborationPayload{SessionID: session.ID, EventKind: domain.SystemCollaborationStarted})
	if err == nil {
		events = append(events, messagePosted(msg))
	}
	s.guard.Release()

	s.publish(events...)
	return session, nil
}

// JoinCollaboration only succeeds while the session is active, and only
// for members of the session's room. Joining twice is a no-op success and
// emits nothing.
func (s *ChatService) JoinCollaboration(ctx context.Context, cmd domain.JoinCollaborationCommand) (domain.CollaborationSession, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.CollaborationSession{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.CollaborationSession{}, err
	}
	user, err := s.users.Get(cmd.UserID)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	current, err := s.collabs.Get(cmd.Session)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	room, err := s.rooms.Get(current.Room)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	if !room.IsMember(cmd.UserID) {
		s.guard.Release()
		return domain.CollaborationSession{}, errors.ErrNotAMember
	}
	joined, session, err := s.collabs.Join(cmd.UserID, cmd.Session)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	if !joined {
		s.guard.Release()
		return session, nil
	}
	_ = s.collabs.Record(cmd.Session, cmd.UserID, "joined the session", time.Now().UTC())
	events := []event.Event{{
		Type:      event.CollaborationJoinedType,
		Room:      session.Room,
		CreatedAt: time.Now().UTC(),
		Payload:   event.CollaborationJoined{Session: session.ID, Room: session.Room, User: cmd.UserID},
	}}
	msg, err := s.appendSystem(session.Room,
		fmt.Sprintf("%s joined the collaboration: %s", user.DisplayName, session.Title),
		domain.CollaborationPayload{SessionID: session.ID, EventKind: domain.SystemCollaborationJoined})
	if err == nil {
		events = append(events, messagePosted(msg))
	}
	s.guard.Release()

	s.publish(events...)
	return session, nil
}

// CompleteCollaboration is the only transition out of the active state.
// Any participant may complete; there is no implicit timeout or
// room-idle trigger.
func (s *ChatService) CompleteCollaboration(ctx context.Context, cmd domain.CompleteCollaborationCommand) (domain.CollaborationSession, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.CollaborationSession{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.CollaborationSession{}, err
	}
	current, err := s.collabs.Get(cmd.Session)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	if !current.HasParticipant(cmd.UserID) {
		s.guard.Release()
		return domain.CollaborationSession{}, errors.ErrNotAMember
	}
	session, err := s.collabs.Complete(cmd.Session)
	if err != nil {
		s.guard.Release()
		return domain.CollaborationSession{}, err
	}
	events := []event.Event{{
		Type:      event.CollaborationCompletedType,
		Room:      session.Room,
		CreatedAt: time.Now().UTC(),
		Payload:   event.CollaborationCompleted{Session: session},
	}}
	msg, err := s.appendSystem(session.Room,
		fmt.Sprintf("Collaboration completed: %s", session.Title),
		domain.CollaborationPayload{SessionID: session.ID, EventKind: domain.SystemCollaborationCompleted})
	if err == nil {
		events = append(events, messagePosted(msg))
	}
	s.guard.Release()

	s.publish(events...)
	return session, nil
}

// ListRooms returns a creation-ordered snapshot taken under the guard,
// so occupancy numbers are never torn by a concurrent join.
func (s *ChatService) ListRooms(ctx context.Context) ([]domain.RoomSummary, error) {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return nil, err
	}
	defer s.guard.Release()
	return s.rooms.List(), nil
}

func (s *ChatService) RoomMessages(ctx context.Context, roomID domain.RoomID, limit int) ([]domain.Message, error) {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return nil, err
	}
	defer s.guard.Release()
	return s.messages.Recent(roomID, limit)
}

func (s *ChatService) RoomMembers(ctx context.Context, roomID domain.RoomID) ([]domain.User, error) {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return nil, err
	}
	defer s.guard.Release()

	ids, err := s.rooms.Members(roomID)
	if err != nil {
		return nil, err
	}
	members := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if user, err := s.users.Get(id); err == nil {
			members = append(members, user)
		}
	}
	return members, nil
}

func (s *ChatService) ActiveCollaborations(ctx context.Context, roomID domain.RoomID) ([]domain.CollaborationSession, error) {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return nil, err
	}
	defer s.guard.Release()

	if _, err := s.rooms.Get(roomID); err != nil {
		return nil, err
	}
	return s.collabs.ActiveInRoom(roomID), nil
}

// SearchMessages queries the full-text index. The index is fed
// asynchronously, so results may trail the log by a moment.
func (s *ChatService) SearchMessages(ctx context.Context, roomID domain.RoomID, terms string, limit int) ([]repositories.MessageHit, error) {
	return s.index.Search(ctx, roomID, terms, limit)
}

// Connect registers a connected participant for a room's events and
// returns the buffered sink the transport layer drains. Membership is
// handled separately by JoinRoom; a connection only controls event
// delivery.
func (s *ChatService) Connect(userID domain.UserID, roomID domain.RoomID) *sink.ParticipantSink {
	participant := sink.NewParticipantSink(s.opts.ConnectionBufferSize)
	s.connections.Subscribe(userID, roomID, participant)
	return participant
}

func (s *ChatService) Disconnect(userID domain.UserID, roomID domain.RoomID) {
	s.connections.Unsubscribe(userID, roomID)
}

// CaptureSnapshot freezes users, rooms (with a bounded recent window),
// and active sessions under the guard. The caller persists the returned
// copy outside any lock.
func (s *ChatService) CaptureSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.Snapshot{}, err
	}
	defer s.guard.Release()

	snapshot := domain.Snapshot{
		TakenAt:  time.Now().UTC(),
		Users:    s.users.All(),
		Sessions: s.collabs.Active(),
	}
	for _, room := range s.rooms.All() {
		room.NextSequence = s.messages.NextSequence(room.ID)
		if recent, err := s.messages.Recent(room.ID, s.opts.SnapshotWindow); err == nil {
			room.Recent = recent
		}
		snapshot.Rooms = append(snapshot.Rooms, room)
	}
	return snapshot, nil
}

// PersistSnapshot captures and writes one snapshot on demand. Failures
// are returned for logging but leave the in-memory state untouched; the
// service keeps running memory-only.
func (s *ChatService) PersistSnapshot(ctx context.Context) error {
	snapshot, err := s.CaptureSnapshot(ctx)
	if err != nil {
		return err
	}
	if err := s.store.Store(snapshot); err != nil {
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	s.stats.IncrSnapshotFlushes()
	return nil
}

// Restore rebuilds state from a loaded snapshot. Meant for startup,
// before any traffic; it still takes the guard for consistency.
func (s *ChatService) Restore(ctx context.Context, snapshot domain.Snapshot) error {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return err
	}
	defer s.guard.Release()

	s.users.Restore(snapshot.Users)
	s.rooms.Restore(snapshot.Rooms)
	for _, room := range snapshot.Rooms {
		s.messages.Restore(room.ID, room.NextSequence, room.Recent)
	}
	s.collabs.Restore(snapshot.Sessions)

	s.log.Info("State restored from snapshot",
		"taken_at", snapshot.TakenAt,
		"users", len(snapshot.Users),
		"rooms", len(snapshot.Rooms),
		"sessions", len(snapshot.Sessions))
	return nil
}

// append is the common sequenced-append path. It validates membership
// (the reserved system sender is exempt) and publishes the resulting
// MessagePosted event after releasing the guard.
func (s *ChatService) append(ctx context.Context, roomID domain.RoomID,
	sender domain.UserID, msgType domain.MessageType, content string,
	payload domain.Payload, language string) (domain.Message, error) {
	if err := s.guard.Acquire(ctx, s.opts.GuardTimeout); err != nil {
		return domain.Message{}, err
	}
	room, err := s.rooms.Get(roomID)
	if err != nil {
		s.guard.Release()
		return domain.Message{}, err
	}
	if sender != domain.SystemSenderID {
		if !s.users.Has(sender) {
			s.guard.Release()
			return domain.Message{}, errors.ErrUserNotFound
		}
		if !room.IsMember(sender) {
			s.guard.Release()
			return domain.Message{}, errors.ErrNotAMember
		}
	}
	msg, err := s.messages.Append(roomID, sender, msgType, content, payload, language, time.Now().UTC())
	s.guard.Release()
	if err != nil {
		return domain.Message{}, err
	}

	s.publish(messagePosted(msg))
	return msg, nil
}

// appendSystem must be called with the guard held.
func (s *ChatService) appendSystem(roomID domain.RoomID, content string, payload domain.Payload) (domain.Message, error) {
	msgType := payload.Kind()
	return s.messages.Append(roomID, domain.SystemSenderID, msgType, content, payload, "", time.Now().UTC())
}

// publish hands events to the fanout without ever blocking a chat call.
// A full pipeline drops the event.
func (s *ChatService) publish(events ...event.Event) {
	for _, evt := range events {
		select {
		case s.events <- evt:
		default:
			s.log.Warn(fmt.Sprintf("Event channel full, dropping %s for room %s", evt.Type, evt.Room))
		}
	}
}

func messagePosted(msg domain.Message) event.Event {
	return event.Event{
		Type:      event.MessagePostedType,
		Room:      msg.Room,
		CreatedAt: msg.At,
		Payload:   event.MessagePosted{Message: msg},
	}
}

// Bootstrap creates the default rooms under the reserved system
// identity when the node starts with no snapshot.
func (s *ChatService) Bootstrap(ctx context.Context, defaults []domain.CreateRoomCommand) error {
	created := lo.Map(defaults, func(cmd domain.CreateRoomCommand, _ int) string {
		cmd.CreatorID = domain.SystemSenderID
		summary, err := s.CreateRoom(ctx, cmd)
		if err != nil {
			s.log.Error("Default room creation failed", "name", cmd.Name, "error", err)
			return ""
		}
		return summary.Name
	})
	s.log.Info(fmt.Sprintf("%d default rooms bootstrapped", len(created)))
	return nil
}

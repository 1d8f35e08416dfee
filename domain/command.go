package domain

// Commands are the write-side inputs of the chat service. Tags are
// enforced with go-playground/validator before any state is touched.

type CreateUserCommand struct {
	DisplayName   string   `validate:"required,max=64"`
	Avatar        string   `validate:"max=128"`
	FavoriteGenre string   `validate:"max=32"`
	Instruments   []string `validate:"max=16,dive,required,max=32"`
}

type CreateRoomCommand struct {
	CreatorID   UserID     `validate:"required"`
	Name        string     `validate:"required,max=64"`
	Description string     `validate:"max=280"`
	Type        RoomType   `validate:"required,oneof=general collaboration jamSession"`
	Genre       string     `validate:"max=32"`
	MaxCapacity int        `validate:"required,gt=0"`
	Visibility  Visibility `validate:"required,oneof=public private"`
	Password    string     `validate:"required_if=Visibility private,max=72"`
}

type JoinRoomCommand struct {
	UserID   UserID `validate:"required"`
	Room     RoomID `validate:"required"`
	Password string `validate:"max=72"`
}

type LeaveRoomCommand struct {
	UserID UserID `validate:"required"`
	Room   RoomID `validate:"required"`
}

type SendMessageCommand struct {
	Sender  UserID `validate:"required"`
	Room    RoomID `validate:"required"`
	Content string `validate:"required,max=2000"`
}

// ShareContentCommand wraps generated musical or lyrical content. The
// payload kind drives the resulting message type.
type ShareContentCommand struct {
	Sender  UserID  `validate:"required"`
	Room    RoomID  `validate:"required"`
	Content string  `validate:"required,max=2000"`
	Payload Payload `validate:"required"`
}

type StartCollaborationCommand struct {
	CreatorID UserID            `validate:"required"`
	Room      RoomID            `validate:"required"`
	Type      CollaborationType `validate:"required,oneof=music lyrics completeSong"`
	Title     string            `validate:"required,max=80"`
}

type JoinCollaborationCommand struct {
	UserID  UserID    `validate:"required"`
	Session SessionID `validate:"required"`
}

type CompleteCollaborationCommand struct {
	UserID  UserID    `validate:"required"`
	Session SessionID `validate:"required"`
}

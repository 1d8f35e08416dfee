package errors

import "fmt"

var (
	ErrUserNotFound          = fmt.Errorf("user not found")
	ErrRoomNotFound          = fmt.Errorf("room not found")
	ErrRoomFull              = fmt.Errorf("room is full")
	ErrInvalidPassword       = fmt.Errorf("invalid room password")
	ErrNotAMember            = fmt.Errorf("not a member of the room")
	ErrCollaborationNotFound = fmt.Errorf("collaboration session not found")
	ErrCollaborationInactive = fmt.Errorf("collaboration session is not active")
	ErrInvalidCommand        = fmt.Errorf("invalid command")
	ErrGuardTimeout          = fmt.Errorf("state lock acquisition timed out")
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrEmptyWords            = fmt.Errorf("no words have been found")
	ErrSnapshotMissing       = fmt.Errorf("no snapshot stored")
)

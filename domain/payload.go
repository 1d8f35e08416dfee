package domain

// Payload is the typed variant carried by a Message, keyed by its type.
// Variants replace any free-form payload map so consumers can rely on
// structure instead of probing dynamic keys.
type Payload interface {
	Kind() MessageType
}

type TextPayload struct{}

func (TextPayload) Kind() MessageType { return MessageText }

// MusicPayload carries a shared musical fragment from the composer.
type MusicPayload struct {
	Melody []string
	Rhythm []string
	Chords []string
}

func (MusicPayload) Kind() MessageType { return MessageMusic }

// LyricsPayload carries shared lyric lines from the lyric writer.
type LyricsPayload struct {
	Lines       []string
	RhymeScheme string
}

func (LyricsPayload) Kind() MessageType { return MessageLyrics }

type SystemEventKind string

const (
	SystemUserJoined             SystemEventKind = "userJoined"
	SystemUserLeft               SystemEventKind = "userLeft"
	SystemCollaborationStarted   SystemEventKind = "collaborationStarted"
	SystemCollaborationJoined    SystemEventKind = "collaborationJoined"
	SystemCollaborationCompleted SystemEventKind = "collaborationCompleted"
)

type SystemPayload struct {
	EventKind SystemEventKind
}

func (SystemPayload) Kind() MessageType { return MessageSystem }

// CollaborationPayload links an announcement message to its session.
type CollaborationPayload struct {
	SessionID SessionID
	EventKind SystemEventKind
}

func (CollaborationPayload) Kind() MessageType { return MessageCollaboration }

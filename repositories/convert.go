package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"music-chat/domain"
)

func fromUser(user domain.User) userRecord {
	return userRecord{
		ID:            string(user.ID),
		DisplayName:   user.DisplayName,
		Avatar:        user.Avatar,
		FavoriteGenre: user.FavoriteGenre,
		Instruments:   user.Instruments,
		Online:        user.Online,
		CreatedAt:     user.CreatedAt.UnixNano(),
	}
}

func toUser(rec userRecord) domain.User {
	return domain.User{
		ID:            domain.UserID(rec.ID),
		DisplayName:   rec.DisplayName,
		Avatar:        rec.Avatar,
		FavoriteGenre: rec.FavoriteGenre,
		Instruments:   rec.Instruments,
		Online:        rec.Online,
		CreatedAt:     time.Unix(0, rec.CreatedAt).UTC(),
	}
}

func fromRoomSnapshot(room domain.RoomSnapshot) roomRecord {
	return roomRecord{
		ID:           string(room.ID),
		Name:         room.Name,
		Description:  room.Description,
		CreatorID:    string(room.CreatorID),
		Type:         string(room.Type),
		Genre:        room.Genre,
		MaxCapacity:  room.MaxCapacity,
		Visibility:   string(room.Visibility),
		PasswordHash: room.PasswordHash,
		CreatedAt:    room.CreatedAt.UnixNano(),
		Members: lo.Map(room.Members, func(id domain.UserID, _ int) string {
			return string(id)
		}),
		NextSequence: room.NextSequence,
		Recent:       lo.Map(room.Recent, func(m domain.Message, _ int) messageRecord { return fromMessage(m) }),
	}
}

func toRoomSnapshot(rec roomRecord) (domain.RoomSnapshot, error) {
	recent := make([]domain.Message, 0, len(rec.Recent))
	for _, m := range rec.Recent {
		msg, err := toMessage(m, domain.RoomID(rec.ID))
		if err != nil {
			return domain.RoomSnapshot{}, err
		}
		recent = append(recent, msg)
	}
	return domain.RoomSnapshot{
		ID:           domain.RoomID(rec.ID),
		Name:         rec.Name,
		Description:  rec.Description,
		CreatorID:    domain.UserID(rec.CreatorID),
		Type:         domain.RoomType(rec.Type),
		Genre:        rec.Genre,
		MaxCapacity:  rec.MaxCapacity,
		Visibility:   domain.Visibility(rec.Visibility),
		PasswordHash: rec.PasswordHash,
		CreatedAt:    time.Unix(0, rec.CreatedAt).UTC(),
		Members: lo.Map(rec.Members, func(id string, _ int) domain.UserID {
			return domain.UserID(id)
		}),
		NextSequence: rec.NextSequence,
		Recent:       recent,
	}, nil
}

func fromMessage(msg domain.Message) messageRecord {
	return messageRecord{
		ID:       msg.ID.String(),
		Sender:   string(msg.Sender),
		Type:     string(msg.Type),
		Content:  msg.Content,
		Payload:  fromPayload(msg.Payload),
		Sequence: msg.Sequence,
		Language: msg.Language,
		At:       msg.At.UnixNano(),
	}
}

func toMessage(rec messageRecord, room domain.RoomID) (domain.Message, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:       id,
		Room:     room,
		Sender:   domain.UserID(rec.Sender),
		Type:     domain.MessageType(rec.Type),
		Content:  rec.Content,
		Payload:  toPayload(rec.Payload),
		Sequence: rec.Sequence,
		Language: rec.Language,
		At:       time.Unix(0, rec.At).UTC(),
	}, nil
}

func fromPayload(payload domain.Payload) payloadRecord {
	switch p := payload.(type) {
	case domain.MusicPayload:
		return payloadRecord{Music: &musicRecord{Melody: p.Melody, Rhythm: p.Rhythm, Chords: p.Chords}}
	case domain.LyricsPayload:
		return payloadRecord{Lyrics: &lyricsRecord{Lines: p.Lines, RhymeScheme: p.RhymeScheme}}
	case domain.SystemPayload:
		return payloadRecord{System: &systemRecord{EventKind: string(p.EventKind)}}
	case domain.CollaborationPayload:
		return payloadRecord{Collab: &collabRef{SessionID: string(p.SessionID), EventKind: string(p.EventKind)}}
	default:
		// Text messages carry no structure.
		return payloadRecord{}
	}
}

func toPayload(rec payloadRecord) domain.Payload {
	switch {
	case rec.Music != nil:
		return domain.MusicPayload{Melody: rec.Music.Melody, Rhythm: rec.Music.Rhythm, Chords: rec.Music.Chords}
	case rec.Lyrics != nil:
		return domain.LyricsPayload{Lines: rec.Lyrics.Lines, RhymeScheme: rec.Lyrics.RhymeScheme}
	case rec.System != nil:
		return domain.SystemPayload{EventKind: domain.SystemEventKind(rec.System.EventKind)}
	case rec.Collab != nil:
		return domain.CollaborationPayload{
			SessionID: domain.SessionID(rec.Collab.SessionID),
			EventKind: domain.SystemEventKind(rec.Collab.EventKind),
		}
	default:
		return domain.TextPayload{}
	}
}

func fromSession(session domain.CollaborationSession) collabRecord {
	return collabRecord{
		ID:        string(session.ID),
		Room:      string(session.Room),
		CreatorID: string(session.CreatorID),
		Title:     session.Title,
		Type:      string(session.Type),
		Status:    string(session.Status),
		CreatedAt: session.CreatedAt.UnixNano(),
		Participants: lo.Map(session.Participants(), func(id domain.UserID, _ int) string {
			return string(id)
		}),
		Contributions: lo.Map(session.Contributions, func(c domain.Contribution, _ int) contribRecord {
			return contribRecord{Author: string(c.Author), Summary: c.Summary, At: c.At.UnixNano()}
		}),
	}
}

func toSession(rec collabRecord) domain.CollaborationSession {
	session := domain.RestoreCollaborationSession(
		domain.SessionID(rec.ID),
		domain.RoomID(rec.Room),
		domain.UserID(rec.CreatorID),
		rec.Title,
		domain.CollaborationType(rec.Type),
		domain.CollaborationStatus(rec.Status),
		time.Unix(0, rec.CreatedAt).UTC(),
		lo.Map(rec.Participants, func(id string, _ int) domain.UserID {
			return domain.UserID(id)
		}),
		lo.Map(rec.Contributions, func(c contribRecord, _ int) domain.Contribution {
			return domain.Contribution{Author: domain.UserID(c.Author), Summary: c.Summary, At: time.Unix(0, c.At).UTC()}
		}),
	)
	return session.Clone()
}

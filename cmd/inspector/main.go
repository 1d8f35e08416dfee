// Command inspector prints the latest persisted snapshot of a chat
// node. It opens the store read-only, so it can run next to a live
// server.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"music-chat/domain"
	"music-chat/logs"
	"music-chat/repositories"
)

func main() {
	dbPath := flag.String("db", "/tmp/music-chat/badger", "Path to badger DB")
	messages := flag.Int("messages", 5, "Recent messages shown per room")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewSnapshotRepository(db, logs.GetLoggerFromLevel(slog.LevelWarn))
	snapshot, err := repository.Load()
	if err != nil {
		log.Fatal("Error while loading snapshot: ", err)
	}

	header := fmt.Sprintf(" Snapshot taken at %s - %d users, %d rooms, %d active sessions ",
		snapshot.TakenAt.Format("2006-01-02 15:04:05"),
		len(snapshot.Users), len(snapshot.Rooms), len(snapshot.Sessions))
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(header))

	renderRooms(snapshot.Rooms, *messages)
	renderSessions(snapshot.Sessions)
}

func renderRooms(rooms []domain.RoomSnapshot, messageLimit int) {
	table := newTable([]string{"Room", "Name", "Type", "Visibility", "Members", "Capacity", "Next Seq"})
	for _, room := range rooms {
		table.Append([]string{
			shortID(string(room.ID)),
			room.Name,
			string(room.Type),
			string(room.Visibility),
			fmt.Sprintf("%d", len(room.Members)),
			fmt.Sprintf("%d", room.MaxCapacity),
			fmt.Sprintf("%d", room.NextSequence),
		})
	}
	table.Render()

	for _, room := range rooms {
		if len(room.Recent) == 0 {
			continue
		}
		fmt.Println(color.Cyan.Sprintf("\nRecent messages: %s", room.Name))
		recent := room.Recent
		if len(recent) > messageLimit {
			recent = recent[len(recent)-messageLimit:]
		}
		messageTable := newTable([]string{"Seq", "At", "Sender", "Type", "Content"})
		for _, msg := range recent {
			messageTable.Append([]string{
				fmt.Sprintf("%d", msg.Sequence),
				msg.At.Format("15:04:05"),
				shortID(string(msg.Sender)),
				string(msg.Type),
				truncate(msg.Content, 60),
			})
		}
		messageTable.Render()
	}
}

func renderSessions(sessions []domain.CollaborationSession) {
	if len(sessions) == 0 {
		return
	}
	fmt.Println(color.Cyan.Sprint("\nActive collaborations"))
	table := newTable([]string{"Session", "Room", "Title", "Type", "Participants", "Started"})
	for _, session := range sessions {
		table.Append([]string{
			shortID(string(session.ID)),
			shortID(string(session.Room)),
			session.Title,
			string(session.Type),
			fmt.Sprintf("%d", len(session.Participants())),
			session.CreatedAt.Format("15:04:05"),
		})
	}
	table.Render()
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

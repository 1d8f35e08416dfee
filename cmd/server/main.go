package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"music-chat/domain"
	"music-chat/domain/event"
	chaterrors "music-chat/errors"
	"music-chat/internal"
	"music-chat/logs"
	"music-chat/moderation"
	"music-chat/observability"
	"music-chat/registry"
	"music-chat/repositories"
	chatruntime "music-chat/runtime"
	"music-chat/runtime/workers"
	"music-chat/services"
	"music-chat/sink"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// defaultRooms seed a fresh node so the first user has somewhere to go.
// They are skipped entirely when a snapshot restores previous state.
var defaultRooms = []domain.CreateRoomCommand{
	{Name: "General", Genre: "any", Type: domain.RoomGeneral, Visibility: domain.VisibilityPublic, MaxCapacity: 100},
	{Name: "Jazz Lounge", Genre: "jazz", Type: domain.RoomJamSession, Visibility: domain.VisibilityPublic, MaxCapacity: 30},
	{Name: "Songwriting Workshop", Genre: "any", Type: domain.RoomCollaboration, Visibility: domain.VisibilityPublic, MaxCapacity: 20},
}

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the node lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeCfg := bluge.DefaultConfig(config.BlugeFilepath)
	blugeWriter, err := bluge.OpenWriter(blugeCfg)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation
	censored, err := chatruntime.LoadCensoredWords()
	if err != nil {
		return exitConfig, fmt.Errorf("loading censored words: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("building moderator: %w", err)
	}
	logger.Info(fmt.Sprintf("Moderation ready with %d words across %d languages",
		len(censored.Words), len(censored.Languages)))

	// 4. State, Repositories & Service
	telemetryChan := make(chan event.Event, config.BufferSize)
	eventChan := make(chan event.Event, config.BufferSize)

	stats := observability.NewChatStats()
	connections := chatruntime.NewConnectionRegistry()
	snapshotRepository := repositories.NewSnapshotRepository(db, logger)
	messageIndex := repositories.NewMessageIndex(blugeWriter, logger)

	service := services.NewChatService(logger,
		registry.NewUserRegistry(),
		registry.NewRoomRegistry(),
		registry.NewMessageLog(config.MessageRetention),
		registry.NewCollaborationTracker(),
		moderator, messageIndex, snapshotRepository, connections,
		eventChan, stats,
		services.Options{
			GuardTimeout:         config.GuardTimeout,
			SnapshotWindow:       config.SnapshotWindow,
			ConnectionBufferSize: config.ConnectionBufferSize,
		})

	// 5. Restore or Bootstrap
	snapshot, err := snapshotRepository.Load()
	switch {
	case err == nil:
		if err := service.Restore(ctx, snapshot); err != nil {
			return exitRuntime, fmt.Errorf("restoring snapshot: %w", err)
		}
	case errors.Is(err, chaterrors.ErrSnapshotMissing):
		logger.Info("No snapshot found, bootstrapping default rooms")
		if err := service.Bootstrap(ctx, defaultRooms); err != nil {
			return exitRuntime, fmt.Errorf("bootstrapping rooms: %w", err)
		}
	default:
		return exitRuntime, fmt.Errorf("loading snapshot: %w", err)
	}

	// 6. Supervision
	fanout := workers.NewEventFanout(logger, eventChan, telemetryChan, connections, config.SinkTimeout).
		Add(sink.NewSearchSink(messageIndex, logger))
	telemetryWorker := workers.NewTelemetryWorker(logger, telemetryChan, stats, config.StatsInterval)
	flusher := workers.NewSnapshotFlusher(logger, service, snapshotRepository, telemetryChan, config.FlushInterval)

	sup := workers.NewSupervisor(logger, telemetryChan, config.RestartInterval)
	sup.Add(fanout, telemetryWorker, flusher)

	// 7. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		logger.Info("Starting supervisor", "at", time.Now().UTC())
		sup.Run(ctx)
		close(done)
	}()

	// 8. Wait for Stop
	<-ctx.Done()
	logger.Info("Shutdown signal received")

	// 9. Final Cleanup (Graceful Shutdown)
	sup.Stop()
	<-done

	// One last flush so a clean restart loses nothing.
	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.PersistSnapshot(flushCtx); err != nil {
		logger.Error("Final snapshot flush failed", "error", err)
	}

	logger.Info("Program stopped cleanly", "stats", stats.View())
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

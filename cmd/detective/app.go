package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"detective/internal/config"
	"detective/internal/debug"
	"detective/internal/game"
	"detective/internal/game/events"
	"detective/internal/logging"
	"detective/internal/observability"
)

type app struct {
	debug   *debug.Logger
	tracing *observability.TracerProvider
	journal *logging.Journal
	span    *observability.SpanRecorder
	session *game.Session
}

func createApp(ctx context.Context, cfg config.Config) (*app, func(), error) {
	debugLogger := debug.NewLogger(cfg.Debug, cfg.DebugLogPath)

	root, err := game.BuildMansion()
	if err != nil {
		debugLogger.Close()
		return nil, nil, err
	}

	tracerProvider, err := observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
		tracerProvider = &observability.TracerProvider{}
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
	} else {
		debugLogger.Println("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	a := &app{debug: debugLogger, tracing: tracerProvider}
	recorders := events.Fanout{events.RecorderFunc(func(ev events.Event) error {
		debugLogger.Printf("event %s", ev)
		return nil
	})}

	sessionID := uuid.NewString()

	if cfg.JournalPath != "" {
		journal, err := logging.NewJournal(cfg.JournalPath, sessionID)
		if err != nil {
			tracerProvider.Shutdown(context.Background())
			debugLogger.Close()
			return nil, nil, fmt.Errorf("failed to initialize journal: %w", err)
		}
		a.journal = journal
		recorders = append(recorders, journal)
		debugLogger.Printf("Journal writing to %s", cfg.JournalPath)
	}

	_, span := observability.StartExploration(ctx, tracerProvider.GetTracer("detective"), sessionID)
	a.span = span
	recorders = append(recorders, span)

	a.session = game.NewSession(root, game.DefaultSuspects(),
		game.WithSessionID(sessionID),
		game.WithRecorder(recorders),
		game.WithDebugLogger(debugLogger),
	)
	debugLogger.Printf("Session %s ready at %s", sessionID, root.Name())

	cleanup := func() {
		a.span.End(a.session.Catalog().Len(), nil)
		if a.journal != nil {
			if err := a.journal.Close(); err != nil {
				debugLogger.Printf("Failed to close journal: %v", err)
			}
		}
		if err := a.tracing.Shutdown(context.Background()); err != nil {
			debugLogger.Printf("Failed to shut down tracing: %v", err)
		}
		debugLogger.Close()
	}

	return a, cleanup, nil
}

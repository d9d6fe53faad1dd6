package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"detective/internal/game/events"
)

// SpanRecorder mirrors session events onto a single exploration span.
type SpanRecorder struct {
	span trace.Span
}

// StartExploration opens the span covering a whole session.
func StartExploration(ctx context.Context, tracer trace.Tracer, sessionID string) (context.Context, *SpanRecorder) {
	ctx = ContextWithSessionID(ctx, sessionID)
	ctx, span := tracer.Start(ctx, "mansion.explore",
		trace.WithAttributes(attribute.String("game.session_id", sessionID)),
	)
	return ctx, &SpanRecorder{span: span}
}

// Record implements events.Recorder.
func (r *SpanRecorder) Record(ev events.Event) error {
	attrs := []attribute.KeyValue{
		attribute.String("game.event_id", ev.ID),
		attribute.String("game.room", ev.Room),
	}
	if ev.Detail != "" {
		attrs = append(attrs, attribute.String("game.detail", ev.Detail))
	}
	if suspect, ok := ev.Meta["suspect"]; ok {
		attrs = append(attrs, attribute.String("game.suspect", suspect))
	}
	r.span.AddEvent(string(ev.Type), trace.WithAttributes(attrs...), trace.WithTimestamp(ev.Timestamp))
	return nil
}

// End closes the span with the final clue count.
func (r *SpanRecorder) End(clues int, err error) {
	r.span.SetAttributes(attribute.Int("game.clues_collected", clues))
	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
	}
	r.span.End()
}

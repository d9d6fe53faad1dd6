package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the canonical type of something that happened during an exploration.
type EventType string

const (
	EventEnterRoom     EventType = "enter_room"
	EventClueCollected EventType = "clue_collected"
	EventBlocked       EventType = "blocked"
	EventInvalidInput  EventType = "invalid_input"
	EventEndOfPath     EventType = "end_of_path"
	EventQuit          EventType = "quit"
)

// Event is the canonical record of something that happened in the mansion.
type Event struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Room      string            `json:"room,omitempty"`
	Detail    string            `json:"detail,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// New stamps an event with a fresh id and the current time.
func New(typ EventType, room, detail string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Room:      room,
		Detail:    detail,
		Timestamp: time.Now(),
	}
}

// With returns a copy of the event carrying an extra meta entry.
func (e Event) With(key, value string) Event {
	meta := make(map[string]string, len(e.Meta)+1)
	for k, v := range e.Meta {
		meta[k] = v
	}
	meta[key] = value
	e.Meta = meta
	return e
}

func (e Event) String() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s@%s", e.Type, e.Room)
	}
	return fmt.Sprintf("%s@%s: %s", e.Type, e.Room, e.Detail)
}

// Recorder receives session events as they happen.
type Recorder interface {
	Record(ev Event) error
}

// RecorderFunc adapts a plain function to Recorder.
type RecorderFunc func(ev Event) error

func (f RecorderFunc) Record(ev Event) error {
	return f(ev)
}

// Fanout forwards each event to every recorder and joins their failures.
type Fanout []Recorder

func (f Fanout) Record(ev Event) error {
	var errs []error
	for _, r := range f {
		if r == nil {
			continue
		}
		if err := r.Record(ev); err != nil {
			errs = append(errs, fmt.Errorf("failed to record %s: %w", ev.Type, err))
		}
	}
	return errors.Join(errs...)
}

// Collector keeps every recorded event in memory.
type Collector struct {
	Events []Event
}

func (c *Collector) Record(ev Event) error {
	c.Events = append(c.Events, ev)
	return nil
}

// Types lists the recorded event types in order.
func (c *Collector) Types() []EventType {
	out := make([]EventType, 0, len(c.Events))
	for _, ev := range c.Events {
		out = append(out, ev.Type)
	}
	return out
}

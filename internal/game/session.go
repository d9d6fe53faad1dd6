package game

import (
	"fmt"

	"github.com/google/uuid"

	"detective/internal/debug"
	"detective/internal/game/events"
)

const defaultHistorySize = 20

// State is the phase of an exploration.
type State int

const (
	StateAtRoom State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "at_room"
}

// Outcome describes what a single step of the session did.
type Outcome struct {
	Room      *Room
	Command   Command
	Clue      string
	Suspect   string
	Blocked   bool
	Invalid   bool
	EndOfPath bool
	Quit      bool
}

// Collected reports whether the step picked up a clue.
func (o Outcome) Collected() bool { return o.Clue != "" }

// ReportEntry is one line of the final report.
type ReportEntry struct {
	Clue    string
	Suspect string
}

// Session walks the mansion under player commands, collecting clues into a
// catalog and attributing them through the suspect index.
type Session struct {
	id       string
	root     *Room
	current  *Room
	state    State
	started  bool
	catalog  *ClueCatalog
	suspects *SuspectIndex
	history  *History
	recorder events.Recorder
	debug    *debug.Logger
}

type Option func(*Session)

func WithRecorder(r events.Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

func WithDebugLogger(l *debug.Logger) Option {
	return func(s *Session) { s.debug = l }
}

func WithHistorySize(n int) Option {
	return func(s *Session) { s.history = NewHistory(n) }
}

func WithSessionID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession prepares a session at the mansion entrance. suspects may be nil,
// in which case clues are not attributed.
func NewSession(root *Room, suspects *SuspectIndex, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		root:     root,
		current:  root,
		catalog:  NewClueCatalog(),
		suspects: suspects,
		history:  NewHistory(defaultHistorySize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string              { return s.id }
func (s *Session) Current() *Room          { return s.current }
func (s *Session) State() State            { return s.state }
func (s *Session) Terminated() bool        { return s.state == StateTerminated }
func (s *Session) Catalog() *ClueCatalog   { return s.catalog }
func (s *Session) History() *History       { return s.history }
func (s *Session) Suspects() *SuspectIndex { return s.suspects }

// Start enters the entrance room. Calling it again has no effect.
func (s *Session) Start() Outcome {
	if s.started {
		return Outcome{Room: s.current}
	}
	s.started = true
	if s.root == nil {
		s.state = StateTerminated
		return Outcome{EndOfPath: true}
	}
	return s.enter(s.root)
}

// Apply performs one player command.
func (s *Session) Apply(cmd Command) Outcome {
	if !s.started {
		s.Start()
	}
	if s.Terminated() {
		return Outcome{Room: s.current, Command: cmd}
	}
	s.history.AddPlayerAction(cmd)

	switch cmd {
	case CommandQuit:
		return s.Quit()
	case CommandLeft, CommandRight:
		next := s.current.Child(cmd)
		if next == nil {
			s.history.AddAlert(fmt.Sprintf("não há caminho à %s", cmd))
			s.record(events.New(events.EventBlocked, s.current.name, cmd.String()))
			s.debug.Printf("session %s: blocked %s at %s", s.id, cmd, s.current.name)
			return Outcome{Room: s.current, Command: cmd, Blocked: true}
		}
		out := s.enter(next)
		out.Command = cmd
		return out
	default:
		s.history.AddAlert("opção inválida")
		s.record(events.New(events.EventInvalidInput, s.current.name, ""))
		return Outcome{Room: s.current, Command: CommandInvalid, Invalid: true}
	}
}

// Quit ends the exploration where it stands.
func (s *Session) Quit() Outcome {
	if s.Terminated() {
		return Outcome{Room: s.current, Command: CommandQuit, Quit: true}
	}
	s.state = StateTerminated
	room := ""
	if s.current != nil {
		room = s.current.name
	}
	s.record(events.New(events.EventQuit, room, ""))
	s.debug.Printf("session %s: quit at %s with %d clues", s.id, room, s.catalog.Len())
	return Outcome{Room: s.current, Command: CommandQuit, Quit: true}
}

func (s *Session) enter(r *Room) Outcome {
	s.current = r
	out := Outcome{Room: r}
	s.history.AddNarration("entrou em " + r.name)
	s.record(events.New(events.EventEnterRoom, r.name, ""))

	if clue, ok := r.collect(); ok {
		s.catalog.Insert(clue)
		out.Clue = clue
		ev := events.New(events.EventClueCollected, r.name, clue)
		if s.suspects != nil {
			out.Suspect = s.suspects.Lookup(clue)
			ev = ev.With("suspect", out.Suspect)
		}
		s.history.AddNarration("pista: " + clue)
		s.record(ev)
	}

	if r.IsLeaf() {
		s.state = StateTerminated
		out.EndOfPath = true
		s.record(events.New(events.EventEndOfPath, r.name, ""))
		s.debug.Printf("session %s: end of path at %s", s.id, r.name)
	}
	return out
}

func (s *Session) record(ev events.Event) {
	if s.recorder == nil {
		return
	}
	ev = ev.With("session", s.id)
	if err := s.recorder.Record(ev); err != nil {
		s.debug.Printf("session %s: %v", s.id, err)
	}
}

// Report lists the collected clues in ascending order with their suspects.
func (s *Session) Report() []ReportEntry {
	var entries []ReportEntry
	s.catalog.InOrder(func(text string) {
		entry := ReportEntry{Clue: text}
		if s.suspects != nil {
			entry.Suspect = s.suspects.Lookup(text)
		}
		entries = append(entries, entry)
	})
	return entries
}

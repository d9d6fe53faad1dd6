package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"detective/internal/debug"
	"detective/internal/game"
)

// Model presents an exploration session as a full-screen terminal app.
type Model struct {
	session     *game.Session
	debug       *debug.Logger
	messages    []string
	width       int
	height      int
	showHistory bool
	finished    bool
}

// NewModel enters the first room of the session.
func NewModel(session *game.Session, debugLogger *debug.Logger) Model {
	m := Model{
		session: session,
		debug:   debugLogger,
		width:   80,
		height:  24,
	}
	m.messages = append(m.messages, "Detective Quest: o mistério da mansão", "")
	m.narrate(session.Start())
	if session.Terminated() {
		m.finish()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Session exposes the underlying session, e.g. to print the report after the program exits.
func (m Model) Session() *game.Session {
	return m.session
}

func (m Model) Messages() []string {
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

func (m Model) Finished() bool {
	return m.finished
}

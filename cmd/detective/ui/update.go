package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"detective/internal/game"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, tea.Quit
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.narrate(m.session.Quit())
		m.finish()
		return m, tea.Quit
	case tea.KeyTab:
		m.showHistory = !m.showHistory
		return m, nil
	case tea.KeyRunes:
	default:
		return m, nil
	}

	if len(msg.Runes) != 1 {
		m.messages = append(m.messages, "Digite apenas uma tecla: e, d ou s.")
		return m, nil
	}

	key := msg.Runes[0]
	m.messages = append(m.messages, "> "+string(key))
	out := m.session.Apply(game.ParseCommand(key))
	if out.Invalid {
		m.messages = append(m.messages, fmt.Sprintf("Opção inválida '%c'. Use e, d ou s.", key))
		return m, nil
	}
	m.debug.Printf("ui: %s -> %s", out.Command, out.Room.Name())
	m.narrate(out)
	if m.session.Terminated() {
		m.finish()
	}
	return m, nil
}

func (m *Model) narrate(out game.Outcome) {
	switch {
	case out.Blocked:
		m.messages = append(m.messages, fmt.Sprintf("Não há cômodo à %s. Escolha outro caminho.", out.Command))
		return
	case out.Quit:
		m.messages = append(m.messages, "Você encerrou a exploração.")
		return
	case out.Room == nil:
		return
	}

	m.messages = append(m.messages, "Você está em: "+out.Room.Name())
	if out.Collected() {
		line := "Pista encontrada: " + out.Clue
		if out.Suspect != "" {
			line += fmt.Sprintf(" (aponta para: %s)", out.Suspect)
		}
		m.messages = append(m.messages, line)
	}
	if out.EndOfPath {
		m.messages = append(m.messages, "Fim do caminho: não há mais cômodos a partir daqui.")
	}
	m.messages = append(m.messages, "")
}

func (m *Model) finish() {
	if m.finished {
		return
	}
	m.finished = true
	m.messages = append(m.messages, "", "=== Pistas coletadas ===")
	entries := m.session.Report()
	if len(entries) == 0 {
		m.messages = append(m.messages, "Nenhuma pista foi coletada.")
	}
	for _, entry := range entries {
		line := "- " + entry.Clue
		if entry.Suspect != "" {
			line += fmt.Sprintf(" (suspeito: %s)", entry.Suspect)
		}
		m.messages = append(m.messages, line)
	}
	m.messages = append(m.messages, "", "Pressione qualquer tecla para sair.")
}

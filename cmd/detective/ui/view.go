package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	footerHeight := 3
	chatHeight := m.height - footerHeight
	if chatHeight < 3 {
		chatHeight = 3
	}

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	userStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	clueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	alertStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	footerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(max(m.width-4, 10))

	chatPanel := lipgloss.NewStyle().
		Width(max(m.width, 10)).
		Height(chatHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1)

	lines := m.messages
	if m.showHistory {
		lines = append([]string{"[HISTÓRICO]"}, m.session.History().GetEntries()...)
	}

	maxLines := chatHeight - 2
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	var chatContent strings.Builder
	for i := len(lines); i < maxLines; i++ {
		chatContent.WriteString("\n")
	}

	contentWidth := m.width - 4
	for _, line := range lines {
		wrapped := wrapAndIndent(line, contentWidth, " ")
		switch {
		case line == "":
			chatContent.WriteString("\n")
		case strings.HasPrefix(line, "> "):
			chatContent.WriteString(userStyle.Render(wrapped) + "\n")
		case strings.HasPrefix(line, "Pista encontrada") || strings.HasPrefix(line, "- "):
			chatContent.WriteString(clueStyle.Render(wrapped) + "\n")
		case strings.HasPrefix(line, "Não há") || strings.HasPrefix(line, "Opção inválida"):
			chatContent.WriteString(alertStyle.Render(wrapped) + "\n")
		default:
			chatContent.WriteString(messageStyle.Render(wrapped) + "\n")
		}
	}

	footer := "(e) esquerda  (d) direita  (s) sair  (tab) histórico"
	if m.finished {
		footer = "Pressione qualquer tecla para sair."
	}

	return chatPanel.Render(chatContent.String()) + "\n" + footerStyle.Render(footer)
}

func wrapAndIndent(text string, width int, indent string) string {
	if len(text) <= width {
		return indent + text
	}

	var result strings.Builder
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + text
	}

	currentLine := indent + words[0]

	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result.WriteString(currentLine + "\n")
			currentLine = indent + word
		}
	}

	result.WriteString(currentLine)
	return result.String()
}

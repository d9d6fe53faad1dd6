package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"detective/internal/debug"
	"detective/internal/game"
)

type styles struct {
	title  lipgloss.Style
	room   lipgloss.Style
	clue   lipgloss.Style
	alert  lipgloss.Style
	prompt lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		room:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		clue:   r.NewStyle().Foreground(lipgloss.Color("10")),
		alert:  r.NewStyle().Foreground(lipgloss.Color("11")),
		prompt: r.NewStyle().Foreground(lipgloss.Color("8")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// Console drives a session from a line-buffered reader.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
	debug  *debug.Logger
}

func New(in io.Reader, out io.Writer, debugLogger *debug.Logger) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
		debug:  debugLogger,
	}
}

// Run plays the session to its end and prints the report. End of input is a
// quit; any other read failure is returned after the report is printed.
func (c *Console) Run(s *game.Session) error {
	c.println(c.styles.title.Render("=== Detective Quest: o mistério da mansão ==="))
	c.describe(s.Start())

	var readErr error
	for !s.Terminated() {
		c.printf("%s", c.styles.prompt.Render("Escolha um caminho: (e) esquerda, (d) direita, (s) sair > "))
		cmd, key, err := game.ReadCommand(c.in)
		switch {
		case errors.Is(err, game.ErrInvalidCommand):
			c.describe(s.Apply(game.CommandInvalid))
			continue
		case err != nil:
			c.println("")
			c.println(c.styles.muted.Render("Entrada encerrada."))
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			c.debug.Printf("session %s: read failed: %v", s.ID(), err)
			s.Quit()
			continue
		}

		out := s.Apply(cmd)
		if out.Invalid {
			c.println(c.styles.alert.Render(fmt.Sprintf("Opção inválida '%c'. Use e, d ou s.", key)))
			continue
		}
		c.describe(out)
	}

	c.report(s)
	return readErr
}

func (c *Console) describe(out game.Outcome) {
	switch {
	case out.Invalid:
		c.println(c.styles.alert.Render("Opção inválida. Use e, d ou s."))
		return
	case out.Blocked:
		c.println(c.styles.alert.Render(fmt.Sprintf("Não há cômodo à %s. Escolha outro caminho.", out.Command)))
		return
	case out.Quit:
		c.println(c.styles.muted.Render("Você encerrou a exploração."))
		return
	}

	if out.Room == nil {
		return
	}
	c.println("")
	c.println("Você está em: " + c.styles.room.Render(out.Room.Name()))
	if out.Collected() {
		line := "Pista encontrada: " + out.Clue
		if out.Suspect != "" {
			line += fmt.Sprintf(" (aponta para: %s)", out.Suspect)
		}
		c.println(c.styles.clue.Render(line))
	}
	if out.EndOfPath {
		c.println(c.styles.muted.Render("Fim do caminho: não há mais cômodos a partir daqui."))
		return
	}
	c.println(c.styles.muted.Render("Saídas: " + exits(out.Room)))
}

func exits(r *game.Room) string {
	var names []string
	for _, cmd := range r.Exits() {
		names = append(names, fmt.Sprintf("(%c) %s", cmd.Key(), cmd))
	}
	return strings.Join(names, ", ")
}

func (c *Console) report(s *game.Session) {
	c.println("")
	writeReport(c.out, c.styles, s)
}

// WriteReport prints the collected clues of a session in ascending order.
func WriteReport(w io.Writer, s *game.Session) {
	writeReport(w, newStyles(lipgloss.NewRenderer(w)), s)
}

func writeReport(w io.Writer, st styles, s *game.Session) {
	fmt.Fprintln(w, st.title.Render("=== Pistas coletadas ==="))
	entries := s.Report()
	if len(entries) == 0 {
		fmt.Fprintln(w, "Nenhuma pista foi coletada.")
		return
	}
	for _, entry := range entries {
		if entry.Suspect != "" {
			fmt.Fprintf(w, "- %s (suspeito: %s)\n", entry.Clue, entry.Suspect)
		} else {
			fmt.Fprintln(w, "- "+entry.Clue)
		}
	}
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

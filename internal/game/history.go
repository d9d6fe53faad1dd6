package game

import "fmt"

// History keeps the most recent exchanges of a session.
type History struct {
	exchanges []string
	maxSize   int
}

func NewHistory(maxSize int) *History {
	if maxSize < 0 {
		maxSize = 0
	}
	return &History{
		exchanges: make([]string, 0, maxSize),
		maxSize:   maxSize,
	}
}

func (h *History) AddPlayerAction(cmd Command) {
	h.add(fmt.Sprintf("Jogador: %s", cmd))
}

func (h *History) AddNarration(text string) {
	h.add("Narrador: " + text)
}

func (h *History) AddAlert(text string) {
	h.add("Alerta: " + text)
}

func (h *History) add(entry string) {
	if h.maxSize <= 0 {
		return
	}
	h.exchanges = append(h.exchanges, entry)

	if len(h.exchanges) > h.maxSize {
		h.exchanges = h.exchanges[len(h.exchanges)-h.maxSize:]
	}
}

func (h *History) GetEntries() []string {
	result := make([]string, len(h.exchanges))
	copy(result, h.exchanges)
	return result
}

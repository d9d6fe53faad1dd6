package game

import (
	"errors"
	"fmt"
	"io"
	"unicode"
)

var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrNoPath         = errors.New("no path in that direction")
)

// Command is one player decision at a room.
type Command int

const (
	CommandInvalid Command = iota
	CommandLeft
	CommandRight
	CommandQuit
)

// Key returns the character that issues the command.
func (c Command) Key() rune {
	switch c {
	case CommandLeft:
		return 'e'
	case CommandRight:
		return 'd'
	case CommandQuit:
		return 's'
	}
	return '?'
}

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "esquerda"
	case CommandRight:
		return "direita"
	case CommandQuit:
		return "sair"
	}
	return "inválido"
}

// ParseCommand maps a key to a command, ignoring case.
func ParseCommand(key rune) Command {
	switch unicode.ToLower(key) {
	case 'e':
		return CommandLeft
	case 'd':
		return CommandRight
	case 's':
		return CommandQuit
	}
	return CommandInvalid
}

// ReadCommand skips leading whitespace and consumes exactly one character.
// Any read failure, including end of input, is returned as an error; callers
// treat it as an implicit quit.
func ReadCommand(in io.RuneReader) (Command, rune, error) {
	for {
		key, _, err := in.ReadRune()
		if err != nil {
			return CommandQuit, 0, fmt.Errorf("failed to read command: %w", err)
		}
		if unicode.IsSpace(key) {
			continue
		}
		if key == unicode.ReplacementChar {
			return CommandInvalid, key, fmt.Errorf("%w: undecodable input", ErrInvalidCommand)
		}
		return ParseCommand(key), key, nil
	}
}

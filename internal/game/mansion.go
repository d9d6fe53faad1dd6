package game

import (
	"errors"
	"fmt"
)

// MaxRoomNameLen bounds a room name in bytes.
const MaxRoomNameLen = 49

var ErrInvalidLayout = errors.New("invalid mansion layout")

// Room is a node of the mansion map. Its shape is fixed once built; only the
// collected flag changes, and only once.
type Room struct {
	name      string
	clue      string
	collected bool
	left      *Room
	right     *Room
}

func (r *Room) Name() string { return r.name }
func (r *Room) Left() *Room  { return r.left }
func (r *Room) Right() *Room { return r.right }

// Clue returns the clue configured for the room, whether or not it was collected.
func (r *Room) Clue() (string, bool) {
	return r.clue, r.clue != ""
}

// HasClue reports whether the room still holds a clue to collect.
func (r *Room) HasClue() bool {
	return r.clue != "" && !r.collected
}

func (r *Room) Collected() bool { return r.collected }

// IsLeaf reports whether the room has no children.
func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// Child returns the neighbour reached by a navigation command, or nil.
func (r *Room) Child(cmd Command) *Room {
	switch cmd {
	case CommandLeft:
		return r.left
	case CommandRight:
		return r.right
	}
	return nil
}

// Exits lists the navigation commands that lead somewhere from this room.
func (r *Room) Exits() []Command {
	var exits []Command
	if r.left != nil {
		exits = append(exits, CommandLeft)
	}
	if r.right != nil {
		exits = append(exits, CommandRight)
	}
	return exits
}

// collect hands out the clue the first time it is called.
func (r *Room) collect() (string, bool) {
	if !r.HasClue() {
		return "", false
	}
	r.collected = true
	return r.clue, true
}

// RoomSpec describes a room and its children before the tree is built.
type RoomSpec struct {
	Name  string
	Clue  string
	Left  *RoomSpec
	Right *RoomSpec
}

// Build turns a layout into a room tree. Nothing of a failed build is returned.
func Build(spec RoomSpec) (*Room, error) {
	seen := make(map[string]struct{})
	root, err := build(&spec, seen)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func build(spec *RoomSpec, seen map[string]struct{}) (*Room, error) {
	if spec == nil {
		return nil, nil
	}
	room, err := newRoom(spec.Name, spec.Clue)
	if err != nil {
		return nil, err
	}
	if _, dup := seen[spec.Name]; dup {
		return nil, fmt.Errorf("%w: duplicate room %q", ErrInvalidLayout, spec.Name)
	}
	seen[spec.Name] = struct{}{}

	if room.left, err = build(spec.Left, seen); err != nil {
		return nil, err
	}
	if room.right, err = build(spec.Right, seen); err != nil {
		return nil, err
	}
	return room, nil
}

func newRoom(name, clue string) (*Room, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: room without a name", ErrInvalidLayout)
	}
	if len(name) > MaxRoomNameLen {
		return nil, fmt.Errorf("%w: room name %q longer than %d bytes", ErrInvalidLayout, name, MaxRoomNameLen)
	}
	return &Room{name: name, clue: clue}, nil
}

// MansionLayout is the fixed map of the mansion.
func MansionLayout() RoomSpec {
	return RoomSpec{
		Name: "Hall de Entrada",
		Clue: "O culpado tem medo de alturas.",
		Left: &RoomSpec{
			Name: "Sala de Estar",
			Clue: "Há marcas de lama perto da lareira.",
			Left: &RoomSpec{
				Name: "Biblioteca",
				Clue: "Um livro sobre venenos está fora do lugar.",
				Right: &RoomSpec{
					Name: "Escritório Secreto",
					Clue: "Uma carta rasgada menciona uma dívida de jogo.",
				},
			},
			Right: &RoomSpec{
				Name: "Sala de Jantar",
				Clue: "Uma taça de vinho foi deixada pela metade.",
			},
		},
		Right: &RoomSpec{
			Name: "Cozinha",
			Clue: "A faca de pão desapareceu do suporte.",
			Left: &RoomSpec{
				Name: "Despensa",
				Clue: "Pegadas pequenas levam até a porta dos fundos.",
			},
			Right: &RoomSpec{
				Name: "Jardim",
				Left: &RoomSpec{
					Name: "Estufa",
					Clue: "Terra fresca nas luvas do jardineiro.",
				},
			},
		},
	}
}

// BuildMansion assembles the fixed mansion and returns its entrance.
func BuildMansion() (*Room, error) {
	root, err := Build(MansionLayout())
	if err != nil {
		return nil, fmt.Errorf("failed to build mansion: %w", err)
	}
	return root, nil
}

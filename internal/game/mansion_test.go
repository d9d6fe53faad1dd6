package game_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detective/internal/game"
)

func walk(r *game.Room, visit func(*game.Room)) {
	if r == nil {
		return
	}
	visit(r)
	walk(r.Left(), visit)
	walk(r.Right(), visit)
}

func TestBuildMansionShape(t *testing.T) {
	root, err := game.BuildMansion()
	require.NoError(t, err)

	assert.Equal(t, "Hall de Entrada", root.Name())
	clue, ok := root.Clue()
	require.True(t, ok)
	assert.Equal(t, "O culpado tem medo de alturas.", clue)

	var names, leaves []string
	walk(root, func(r *game.Room) {
		names = append(names, r.Name())
		if r.IsLeaf() {
			leaves = append(leaves, r.Name())
		}
	})

	assert.Len(t, names, 9)
	assert.Equal(t, []string{"Escritório Secreto", "Sala de Jantar", "Despensa", "Estufa"}, leaves)
}

func TestIsLeafMatchesLayout(t *testing.T) {
	root, err := game.BuildMansion()
	require.NoError(t, err)

	walk(root, func(r *game.Room) {
		hasChildren := r.Left() != nil || r.Right() != nil
		assert.Equal(t, !hasChildren, r.IsLeaf(), r.Name())
	})
}

func TestBuildMansionIsDeterministic(t *testing.T) {
	a, err := game.BuildMansion()
	require.NoError(t, err)
	b, err := game.BuildMansion()
	require.NoError(t, err)

	var namesA, namesB []string
	walk(a, func(r *game.Room) { namesA = append(namesA, r.Name()) })
	walk(b, func(r *game.Room) { namesB = append(namesB, r.Name()) })
	assert.Equal(t, namesA, namesB)
	assert.NotSame(t, a, b)
}

func TestRoomExitsAndChild(t *testing.T) {
	root, err := game.BuildMansion()
	require.NoError(t, err)

	assert.Equal(t, []game.Command{game.CommandLeft, game.CommandRight}, root.Exits())
	assert.Same(t, root.Left(), root.Child(game.CommandLeft))
	assert.Same(t, root.Right(), root.Child(game.CommandRight))
	assert.Nil(t, root.Child(game.CommandQuit))

	library := root.Left().Left()
	require.Equal(t, "Biblioteca", library.Name())
	assert.Equal(t, []game.Command{game.CommandRight}, library.Exits())
	assert.Nil(t, library.Child(game.CommandLeft))

	garden := root.Right().Right()
	require.Equal(t, "Jardim", garden.Name())
	_, ok := garden.Clue()
	assert.False(t, ok)
	assert.False(t, garden.HasClue())
}

func TestBuildRejectsInvalidLayouts(t *testing.T) {
	tests := []struct {
		name string
		spec game.RoomSpec
	}{
		{
			name: "empty name",
			spec: game.RoomSpec{},
		},
		{
			name: "name too long",
			spec: game.RoomSpec{Name: strings.Repeat("x", game.MaxRoomNameLen+1)},
		},
		{
			name: "duplicate name in subtree",
			spec: game.RoomSpec{
				Name:  "Hall",
				Left:  &game.RoomSpec{Name: "Porão"},
				Right: &game.RoomSpec{Name: "Porão"},
			},
		},
		{
			name: "invalid child",
			spec: game.RoomSpec{Name: "Hall", Right: &game.RoomSpec{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := game.Build(tt.spec)
			require.ErrorIs(t, err, game.ErrInvalidLayout)
			assert.Nil(t, root)
		})
	}
}

func TestBuildAcceptsNameAtLimit(t *testing.T) {
	name := strings.Repeat("x", game.MaxRoomNameLen)
	root, err := game.Build(game.RoomSpec{Name: name})
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
}

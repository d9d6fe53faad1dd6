package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detective/internal/game"
)

func TestBucketForSumsBytes(t *testing.T) {
	// 'A'+'B'+'C' = 65+66+67 = 198, 198 % 7 = 2
	assert.Equal(t, 2, game.BucketFor("ABC"))
	assert.Equal(t, game.BucketFor("ABC"), game.BucketFor("BCA"))
	assert.Equal(t, 0, game.BucketFor(""))
}

func TestSuspectIndexCollisions(t *testing.T) {
	idx := game.NewSuspectIndex()
	idx.Insert("ABC", "Suspect1")
	idx.Insert("BCA", "Suspect2")

	assert.Equal(t, "Suspect1", idx.Lookup("ABC"))
	assert.Equal(t, "Suspect2", idx.Lookup("BCA"))
	assert.Equal(t, 2, idx.ChainLen(game.BucketFor("ABC")))
	assert.Equal(t, 2, idx.Len())
}

func TestSuspectIndexLatestEntryWins(t *testing.T) {
	idx := game.NewSuspectIndex()
	idx.Insert("pegadas", "Mordomo")
	idx.Insert("pegadas", "Cozinheira")

	assert.Equal(t, "Cozinheira", idx.Lookup("pegadas"))
	assert.Equal(t, 2, idx.ChainLen(game.BucketFor("pegadas")))
}

func TestSuspectIndexUnknown(t *testing.T) {
	idx := game.NewSuspectIndex()
	assert.Equal(t, game.UnknownSuspect, idx.Lookup("nada"))

	idx.Insert("ABC", "Suspect1")
	// Anagrams share the bucket but are different keys.
	assert.Equal(t, game.UnknownSuspect, idx.Lookup("ACB"))
	_, ok := idx.Suspect("BCA")
	assert.False(t, ok)
	assert.NotEmpty(t, game.UnknownSuspect)
}

func TestSuspectIndexChainLenBounds(t *testing.T) {
	idx := game.NewSuspectIndex()
	assert.Zero(t, idx.ChainLen(-1))
	assert.Zero(t, idx.ChainLen(game.SuspectBuckets))
}

func TestDefaultSuspectsCoverMansionClues(t *testing.T) {
	root, err := game.BuildMansion()
	require.NoError(t, err)
	idx := game.DefaultSuspects()

	walk(root, func(r *game.Room) {
		clue, ok := r.Clue()
		if !ok {
			return
		}
		suspect, found := idx.Suspect(clue)
		assert.True(t, found, clue)
		assert.NotEqual(t, game.UnknownSuspect, suspect)
	})
}

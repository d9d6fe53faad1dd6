package game_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detective/internal/game"
)

func TestClueCatalogSortsAndDeduplicates(t *testing.T) {
	tests := []struct {
		name   string
		insert []string
		want   []string
	}{
		{
			name:   "empty",
			insert: nil,
			want:   []string{},
		},
		{
			name:   "single",
			insert: []string{"O culpado tem medo de alturas."},
			want:   []string{"O culpado tem medo de alturas."},
		},
		{
			name:   "shuffled",
			insert: []string{"m", "c", "x", "a", "e", "z"},
			want:   []string{"a", "c", "e", "m", "x", "z"},
		},
		{
			name:   "duplicates ignored",
			insert: []string{"b", "a", "b", "c", "a"},
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "byte order puts upper case first",
			insert: []string{"banana", "Banana", "Ábaco", "abacaxi"},
			want:   []string{"Banana", "abacaxi", "banana", "Ábaco"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := game.NewClueCatalog()
			for _, text := range tt.insert {
				c.Insert(text)
			}
			assert.Equal(t, tt.want, c.Sorted())
			assert.Equal(t, len(tt.want), c.Len())
			assert.True(t, sort.StringsAreSorted(c.Sorted()))
		})
	}
}

func TestClueCatalogInsertIsIdempotent(t *testing.T) {
	once := game.NewClueCatalog()
	twice := game.NewClueCatalog()
	for _, text := range []string{"pista b", "pista a", "pista c"} {
		once.Insert(text)
		require.True(t, twice.Insert(text))
		require.False(t, twice.Insert(text))
	}

	assert.Equal(t, once.Sorted(), twice.Sorted())
	assert.Equal(t, once.Height(), twice.Height())
	assert.True(t, twice.Contains("pista a"))
	assert.False(t, twice.Contains("pista d"))
}

func TestClueCatalogDegeneratesOnSortedInput(t *testing.T) {
	c := game.NewClueCatalog()
	clues := []string{"a", "b", "c", "d", "e", "f"}
	for _, text := range clues {
		c.Insert(text)
	}

	// Every node hangs off the right of its predecessor.
	assert.Equal(t, len(clues), c.Height())
	assert.Equal(t, clues, c.Sorted())
}

func TestClueCatalogBalancedInsertOrder(t *testing.T) {
	c := game.NewClueCatalog()
	for _, text := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		c.Insert(text)
	}
	assert.Equal(t, 3, c.Height())
}

func TestClueCatalogInOrderOnEmpty(t *testing.T) {
	c := game.NewClueCatalog()
	visited := 0
	c.InOrder(func(string) { visited++ })
	assert.Zero(t, visited)
	assert.Zero(t, c.Height())
}

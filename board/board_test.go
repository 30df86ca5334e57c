package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/fonetik/wugboard/tileset"
)

func TestBonusLayout(t *testing.T) {
	is := is.New(t)

	b := New()
	counts := map[Bonus]int{}
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			counts[b.Cell(row, col).Bonus]++
		}
	}
	is.Equal(counts[BonusTripleWord], 8)
	is.Equal(counts[BonusDoubleWord], 16)
	is.Equal(counts[BonusTripleLetter], 12)
	is.Equal(counts[BonusDoubleLetter], 24)
	is.Equal(counts[BonusCenter], 1)
	is.Equal(counts[BonusNone], Dim*Dim-8-16-12-24-1)

	is.Equal(b.Cell(7, 7).Bonus, BonusCenter)
	is.Equal(b.Cell(0, 0).Bonus, BonusTripleWord)
	is.Equal(b.Cell(5, 5).Bonus, BonusTripleLetter)
}

func TestLayoutIsSymmetric(t *testing.T) {
	is := is.New(t)

	b := New()
	// The standard layout is symmetric under 180-degree rotation.
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			is.Equal(b.Cell(row, col).Bonus, b.Cell(Dim-1-row, Dim-1-col).Bonus)
		}
	}
}

func TestPlaceTile(t *testing.T) {
	is := is.New(t)

	b := New()
	tile := tileset.Tile{ID: "t1", Char: "n", Points: 1}
	is.NoErr(b.PlaceTile(7, 7, tile))
	is.Equal(b.Cell(7, 7).Tile.Char, "n")
	is.Equal(b.TilesOnBoard(), 1)

	err := b.PlaceTile(7, 7, tileset.Tile{ID: "t2", Char: "t"})
	is.True(err != nil) // occupied cells are never overwritten
	is.Equal(b.Cell(7, 7).Tile.ID, "t1")

	is.True(b.PlaceTile(15, 0, tile) != nil)
	is.True(b.PlaceTile(0, -1, tile) != nil)
}

func TestSnapshotIsACopy(t *testing.T) {
	is := is.New(t)

	b := New()
	snap := b.Snapshot()
	is.Equal(len(snap), Dim)
	is.Equal(len(snap[0]), Dim)

	snap[3][4].Tile = &tileset.Tile{ID: "x"}
	is.True(b.IsEmpty(3, 4)) // mutating the snapshot must not touch the board
}

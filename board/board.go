// Package board implements the 15x15 game board: cells, tile placement,
// and the fixed bonus square layout.
package board

import (
	"fmt"

	"github.com/fonetik/wugboard/tileset"
)

// Dim is the board dimension; the board is always Dim x Dim.
const Dim = 15

// Bonus is a bonus square type.
type Bonus string

const (
	BonusNone         Bonus = "normal"
	BonusDoubleLetter Bonus = "double-letter"
	BonusTripleLetter Bonus = "triple-letter"
	BonusDoubleWord   Bonus = "double-word"
	BonusTripleWord   Bonus = "triple-word"
	// BonusCenter is the center star. It doubles the word like a
	// double-word square.
	BonusCenter Bonus = "center"
)

// Direction is an axis of play.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "(horizontal)"
	}
	return "(vertical)"
}

// A Cell is a single square on the board. Occupant is nil while the cell
// is empty; once a tile lands it is never overwritten.
type Cell struct {
	Row   int           `json:"row"`
	Col   int           `json:"col"`
	Tile  *tileset.Tile `json:"tile"`
	Bonus Bonus         `json:"type"`
}

// Board is the game board. It is created empty with the bonus layout
// baked in; the layout never changes for the life of a room.
type Board struct {
	cells [Dim][Dim]Cell
}

// bonusLayout is the fixed bonus square placement, keyed by [row][col].
var bonusLayout = map[[2]int]Bonus{
	// Triple word
	{0, 0}: BonusTripleWord, {0, 7}: BonusTripleWord, {0, 14}: BonusTripleWord,
	{7, 0}: BonusTripleWord, {7, 14}: BonusTripleWord,
	{14, 0}: BonusTripleWord, {14, 7}: BonusTripleWord, {14, 14}: BonusTripleWord,
	// Double word
	{1, 1}: BonusDoubleWord, {2, 2}: BonusDoubleWord, {3, 3}: BonusDoubleWord, {4, 4}: BonusDoubleWord,
	{1, 13}: BonusDoubleWord, {2, 12}: BonusDoubleWord, {3, 11}: BonusDoubleWord, {4, 10}: BonusDoubleWord,
	{10, 4}: BonusDoubleWord, {11, 3}: BonusDoubleWord, {12, 2}: BonusDoubleWord, {13, 1}: BonusDoubleWord,
	{10, 10}: BonusDoubleWord, {11, 11}: BonusDoubleWord, {12, 12}: BonusDoubleWord, {13, 13}: BonusDoubleWord,
	// Triple letter
	{1, 5}: BonusTripleLetter, {1, 9}: BonusTripleLetter,
	{5, 1}: BonusTripleLetter, {5, 5}: BonusTripleLetter, {5, 9}: BonusTripleLetter, {5, 13}: BonusTripleLetter,
	{9, 1}: BonusTripleLetter, {9, 5}: BonusTripleLetter, {9, 9}: BonusTripleLetter, {9, 13}: BonusTripleLetter,
	{13, 5}: BonusTripleLetter, {13, 9}: BonusTripleLetter,
	// Double letter
	{0, 3}: BonusDoubleLetter, {0, 11}: BonusDoubleLetter,
	{2, 6}: BonusDoubleLetter, {2, 8}: BonusDoubleLetter,
	{3, 0}: BonusDoubleLetter, {3, 7}: BonusDoubleLetter, {3, 14}: BonusDoubleLetter,
	{6, 2}: BonusDoubleLetter, {6, 6}: BonusDoubleLetter, {6, 8}: BonusDoubleLetter, {6, 12}: BonusDoubleLetter,
	{7, 3}: BonusDoubleLetter, {7, 11}: BonusDoubleLetter,
	{8, 2}: BonusDoubleLetter, {8, 6}: BonusDoubleLetter, {8, 8}: BonusDoubleLetter, {8, 12}: BonusDoubleLetter,
	{11, 0}: BonusDoubleLetter, {11, 7}: BonusDoubleLetter, {11, 14}: BonusDoubleLetter,
	{12, 6}: BonusDoubleLetter, {12, 8}: BonusDoubleLetter,
	{14, 3}: BonusDoubleLetter, {14, 11}: BonusDoubleLetter,
	// Center star
	{7, 7}: BonusCenter,
}

// New creates an empty board with the standard bonus layout.
func New() *Board {
	b := &Board{}
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			bonus, ok := bonusLayout[[2]int{row, col}]
			if !ok {
				bonus = BonusNone
			}
			b.cells[row][col] = Cell{Row: row, Col: col, Bonus: bonus}
		}
	}
	return b
}

// Cell returns a pointer to the cell at the given position. Positions are
// assumed in range; callers validate coordinates at the boundary.
func (b *Board) Cell(row, col int) *Cell {
	return &b.cells[row][col]
}

// InBounds reports whether the position is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// IsEmpty reports whether the cell at the position holds no tile.
func (b *Board) IsEmpty(row, col int) bool {
	return b.cells[row][col].Tile == nil
}

// PlaceTile puts a tile on the given cell. Placing onto an occupied cell
// is an error; tiles are never overwritten.
func (b *Board) PlaceTile(row, col int, t tileset.Tile) error {
	if !InBounds(row, col) {
		return fmt.Errorf("position (%d, %d) is off the board", row, col)
	}
	if b.cells[row][col].Tile != nil {
		return fmt.Errorf("cell (%d, %d) is already occupied", row, col)
	}
	tc := t
	b.cells[row][col].Tile = &tc
	return nil
}

// Snapshot returns the full grid as a row-major slice of cell copies,
// suitable for serialization.
func (b *Board) Snapshot() [][]Cell {
	out := make([][]Cell, Dim)
	for row := 0; row < Dim; row++ {
		out[row] = make([]Cell, Dim)
		copy(out[row], b.cells[row][:])
	}
	return out
}

// TilesOnBoard counts the occupied cells.
func (b *Board) TilesOnBoard() int {
	n := 0
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if b.cells[row][col].Tile != nil {
				n++
			}
		}
	}
	return n
}

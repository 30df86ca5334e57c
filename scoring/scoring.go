// Package scoring validates and scores a single move: it recovers the
// word(s) formed by newly placed tiles, checks each against the
// pronunciation dictionary, and applies letter and word bonuses. It never
// mutates the board; callers apply the move only after validation
// succeeds.
package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/fonetik/wugboard/board"
	"github.com/fonetik/wugboard/phondict"
	"github.com/fonetik/wugboard/tileset"
)

// PlacedTile is one newly placed tile with its board position.
type PlacedTile struct {
	Tile tileset.Tile `json:"tile"`
	Row  int          `json:"row"`
	Col  int          `json:"col"`
}

// CellRef names a board cell belonging to a scored word.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ScoredWord is one validated word and its score contribution.
type ScoredWord struct {
	Word         string    `json:"word"`
	Score        int       `json:"score"`
	Cells        []CellRef `json:"cells"`
	EnglishWords []string  `json:"englishWords"`
}

// EasterEgg is a cosmetic trigger emitted when certain words show up. It
// never affects score or rules; the presentation layer consumes it.
type EasterEgg struct {
	Effect       string   `json:"type"`
	Words        []string `json:"words"`
	EnglishWords []string `json:"englishWords"`
}

// Result is a successful validation: every formed word resolved in the
// dictionary.
type Result struct {
	Words      []ScoredWord `json:"words"`
	TotalScore int          `json:"totalScore"`
	EasterEgg  *EasterEgg   `json:"easterEgg,omitempty"`
}

// WordStrings returns just the phonemic spellings of the scored words.
func (r *Result) WordStrings() []string {
	words := make([]string, len(r.Words))
	for i, w := range r.Words {
		words[i] = w.Word
	}
	return words
}

// RejectionError is a user-correctable move rejection, as opposed to a
// programming error. The reason is meant to be shown to the player.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func reject(format string, args ...any) error {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is a move rejection.
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re)
}

// overlay answers occupancy questions for the board as it would look
// with the new tiles placed, without touching the board itself.
type overlay struct {
	b      *board.Board
	placed map[CellRef]*tileset.Tile
}

func newOverlay(b *board.Board, placed []PlacedTile) *overlay {
	m := make(map[CellRef]*tileset.Tile, len(placed))
	for i := range placed {
		m[CellRef{placed[i].Row, placed[i].Col}] = &placed[i].Tile
	}
	return &overlay{b: b, placed: m}
}

func (o *overlay) tileAt(row, col int) *tileset.Tile {
	if !board.InBounds(row, col) {
		return nil
	}
	if t, ok := o.placed[CellRef{row, col}]; ok {
		return t
	}
	return o.b.Cell(row, col).Tile
}

// run returns the maximal contiguous occupied run through (row, col)
// along dir, in increasing coordinate order.
func (o *overlay) run(row, col int, dir board.Direction) []CellRef {
	if o.tileAt(row, col) == nil {
		return nil
	}
	dr, dc := 0, 1
	if dir == board.Vertical {
		dr, dc = 1, 0
	}
	r, c := row, col
	for o.tileAt(r-dr, c-dc) != nil {
		r -= dr
		c -= dc
	}
	var cells []CellRef
	for o.tileAt(r, c) != nil {
		cells = append(cells, CellRef{r, c})
		r += dr
		c += dc
	}
	return cells
}

// ValidateMove checks the newly placed tiles against the current board
// and the dictionary, and scores the move. The caller guarantees the
// placed positions are in bounds and currently empty. On success every
// formed word is returned with its score; on failure a RejectionError
// describes what the player did wrong.
func ValidateMove(b *board.Board, placed []PlacedTile, oracle phondict.Oracle) (*Result, error) {
	if len(placed) == 0 {
		return nil, reject("no tiles placed")
	}

	rows := lo.Uniq(lo.Map(placed, func(p PlacedTile, _ int) int { return p.Row }))
	cols := lo.Uniq(lo.Map(placed, func(p PlacedTile, _ int) int { return p.Col }))

	var axis board.Direction
	switch {
	case len(rows) == 1 && len(cols) == 1:
		// A lone tile: pick the axis that joins an existing run, if any.
		axis = singleTileAxis(b, placed[0])
	case len(rows) == 1:
		axis = board.Horizontal
	case len(cols) == 1:
		axis = board.Vertical
	default:
		return nil, reject("tiles must form a straight line")
	}

	ov := newOverlay(b, placed)

	primary := ov.run(placed[0].Row, placed[0].Col, axis)
	inPrimary := make(map[CellRef]bool, len(primary))
	for _, ref := range primary {
		inPrimary[ref] = true
	}
	for _, p := range placed {
		if !inPrimary[CellRef{p.Row, p.Col}] {
			return nil, reject("placed tiles must be contiguous")
		}
	}

	words := [][]CellRef{primary}

	// Perpendicular words through each newly placed tile.
	perp := board.Vertical
	if axis == board.Vertical {
		perp = board.Horizontal
	}
	// Each placed tile sits at a distinct coordinate along the play axis,
	// so no two of these perpendicular runs can be the same word.
	for _, p := range placed {
		cross := ov.run(p.Row, p.Col, perp)
		if len(cross) < 2 {
			continue
		}
		words = append(words, cross)
	}

	res := &Result{}
	var allIPA, allEnglish []string
	for _, cells := range words {
		var sb strings.Builder
		for _, ref := range cells {
			sb.WriteString(ov.tileAt(ref.Row, ref.Col).Char)
		}
		ipa := sb.String()
		english := oracle.LookupWords(ipa)
		if len(english) == 0 {
			return nil, reject("%q is not a valid word", ipa)
		}
		score := scoreWord(b, ov, cells)
		res.Words = append(res.Words, ScoredWord{
			Word:         ipa,
			Score:        score,
			Cells:        cells,
			EnglishWords: english,
		})
		res.TotalScore += score
		allIPA = append(allIPA, ipa)
		allEnglish = append(allEnglish, english...)
	}

	res.EasterEgg = detectEasterEgg(allIPA, allEnglish)
	return res, nil
}

// singleTileAxis decides the play axis for a one-tile move: vertical if
// the tile extends a vertical run, otherwise horizontal.
func singleTileAxis(b *board.Board, p PlacedTile) board.Direction {
	above := board.InBounds(p.Row-1, p.Col) && !b.IsEmpty(p.Row-1, p.Col)
	below := board.InBounds(p.Row+1, p.Col) && !b.IsEmpty(p.Row+1, p.Col)
	if above || below {
		return board.Vertical
	}
	return board.Horizontal
}

// scoreWord sums tile points with letter bonuses, then applies the
// product of word multipliers found along the word. Bonus squares are
// always active, not first-cover-only.
func scoreWord(b *board.Board, ov *overlay, cells []CellRef) int {
	sum := 0
	multiplier := 1
	for _, ref := range cells {
		pts := ov.tileAt(ref.Row, ref.Col).Points
		switch b.Cell(ref.Row, ref.Col).Bonus {
		case board.BonusDoubleLetter:
			pts *= 2
		case board.BonusTripleLetter:
			pts *= 3
		case board.BonusDoubleWord, board.BonusCenter:
			multiplier *= 2
		case board.BonusTripleWord:
			multiplier *= 3
		}
		sum += pts
	}
	return sum * multiplier
}

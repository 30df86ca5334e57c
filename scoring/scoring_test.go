package scoring

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonetik/wugboard/board"
	"github.com/fonetik/wugboard/tileset"
)

// mapOracle resolves only the spellings it was given.
type mapOracle map[string][]string

func (m mapOracle) LookupWords(ipa string) []string {
	return m[ipa]
}

func pt(char string, points, row, col int) PlacedTile {
	return PlacedTile{
		Tile: tileset.Tile{ID: char + "-test", Char: char, Points: points},
		Row:  row,
		Col:  col,
	}
}

func TestRejectsEmptyMove(t *testing.T) {
	_, err := ValidateMove(board.New(), nil, mapOracle{})
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Contains(t, err.Error(), "no tiles placed")
}

func TestRejectsNonCollinearTiles(t *testing.T) {
	placed := []PlacedTile{
		pt("n", 1, 7, 7),
		pt("ɛ", 2, 8, 8),
	}
	_, err := ValidateMove(board.New(), placed, mapOracle{"nɛ": {"whatever"}})
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Contains(t, err.Error(), "straight line")
}

func TestRejectsGappedPlacement(t *testing.T) {
	placed := []PlacedTile{
		pt("n", 1, 7, 6),
		pt("t", 1, 7, 9),
	}
	_, err := ValidateMove(board.New(), placed, mapOracle{})
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Contains(t, err.Error(), "contiguous")
}

func TestRejectsSingleUnknownTile(t *testing.T) {
	// A lone glottal stop on an empty board spells "ʔ", which no
	// dictionary entry matches.
	placed := []PlacedTile{pt("ʔ", 6, 7, 7)}
	_, err := ValidateMove(board.New(), placed, mapOracle{})
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Contains(t, err.Error(), `"ʔ" is not a valid word`)
}

func TestDictionaryMissNamesTheWord(t *testing.T) {
	placed := []PlacedTile{
		pt("t", 1, 7, 6),
		pt("ɛ", 2, 7, 7),
		pt("n", 1, 7, 8),
	}
	_, err := ValidateMove(board.New(), placed, mapOracle{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"tɛn"`)
}

func TestScoreLetterBonus(t *testing.T) {
	is := is.New(t)

	// n lands on the double-letter at (7,3): 1*2 + 2 + 1 = 5.
	placed := []PlacedTile{
		pt("n", 1, 7, 3),
		pt("ɛ", 2, 7, 4),
		pt("t", 1, 7, 5),
	}
	res, err := ValidateMove(board.New(), placed, mapOracle{"nɛt": {"net"}})
	is.NoErr(err)
	is.Equal(len(res.Words), 1)
	is.Equal(res.Words[0].Word, "nɛt")
	is.Equal(res.Words[0].EnglishWords, []string{"net"})
	is.Equal(res.TotalScore, 5)
}

func TestScoreCenterDoublesWord(t *testing.T) {
	is := is.New(t)

	// (7,7) is the center star: (1 + 2 + 1) * 2 = 8.
	placed := []PlacedTile{
		pt("n", 1, 7, 6),
		pt("ɛ", 2, 7, 7),
		pt("t", 1, 7, 8),
	}
	res, err := ValidateMove(board.New(), placed, mapOracle{"nɛt": {"net"}})
	is.NoErr(err)
	is.Equal(res.TotalScore, 8)
}

func TestScoreStacksLetterAndWordBonuses(t *testing.T) {
	is := is.New(t)

	// Row 0: (0,0) triple word, (0,3) double letter.
	// (1 + 2 + 1 + 1*2) * 3 = 18.
	placed := []PlacedTile{
		pt("n", 1, 0, 0),
		pt("ɛ", 2, 0, 1),
		pt("t", 1, 0, 2),
		pt("s", 1, 0, 3),
	}
	res, err := ValidateMove(board.New(), placed, mapOracle{"nɛts": {"nets"}})
	is.NoErr(err)
	is.Equal(res.TotalScore, 18)
}

func placeWord(t *testing.T, b *board.Board, row, col int, horizontal bool, tiles ...PlacedTile) {
	t.Helper()
	for i, p := range tiles {
		r, c := row, col+i
		if !horizontal {
			r, c = row+i, col
		}
		if err := b.PlaceTile(r, c, p.Tile); err != nil {
			t.Fatalf("placing fixture tile: %v", err)
		}
	}
}

func TestExtendsExistingRun(t *testing.T) {
	is := is.New(t)

	b := board.New()
	placeWord(t, b, 7, 6, true, pt("n", 1, 0, 0), pt("ɛ", 2, 0, 0), pt("t", 1, 0, 0))

	// Appending s to nɛt forms nɛts; the pre-existing tiles count too.
	placed := []PlacedTile{pt("s", 1, 7, 9)}
	res, err := ValidateMove(b, placed, mapOracle{"nɛts": {"nets"}})
	is.NoErr(err)
	is.Equal(len(res.Words), 1)
	is.Equal(res.Words[0].Word, "nɛts")
	// The center star under the fixture ɛ still doubles the word;
	// bonuses are always-active, not first-cover-only: (1+2+1+1)*2.
	is.Equal(res.TotalScore, 10)
}

func TestCrossWordsValidatedAndScored(t *testing.T) {
	is := is.New(t)

	b := board.New()
	// Fixture: nɛt across row 7, cols 6-8.
	placeWord(t, b, 7, 6, true, pt("n", 1, 0, 0), pt("ɛ", 2, 0, 0), pt("t", 1, 0, 0))

	// Play ɛn on row 8 under the n and ɛ, forming three words:
	//   primary  ɛn  (row 8): ɛ on the (8,6) double letter = 4+1 = 5
	//   cross    nɛ  (col 6): 1 + 4 (same double letter)    = 5
	//   cross    ɛn  (col 7): (2+1) * 2 via the center star  = 6
	placed := []PlacedTile{
		pt("ɛ", 2, 8, 6),
		pt("n", 1, 8, 7),
	}
	oracle := mapOracle{
		"ɛn": {"en"},
		"nɛ": {"ne"},
	}
	res, err := ValidateMove(b, placed, oracle)
	is.NoErr(err)
	is.Equal(len(res.Words), 3)
	is.Equal(res.TotalScore, 16)
}

func TestInvalidCrossWordRejectsWholeMove(t *testing.T) {
	b := board.New()
	placeWord(t, b, 7, 6, true, pt("n", 1, 0, 0), pt("ɛ", 2, 0, 0), pt("t", 1, 0, 0))

	placed := []PlacedTile{
		pt("ɛ", 2, 8, 6),
		pt("n", 1, 8, 7),
	}
	// The primary word resolves but the nɛ cross word does not: the
	// entire move must be rejected, no partial credit.
	oracle := mapOracle{"ɛn": {"en"}}
	_, err := ValidateMove(b, placed, oracle)
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Contains(t, err.Error(), `"nɛ"`)
}

func TestSingleTileJoinsVerticalRun(t *testing.T) {
	is := is.New(t)

	b := board.New()
	placeWord(t, b, 5, 7, false, pt("t", 1, 0, 0), pt("ɛ", 2, 0, 0))

	placed := []PlacedTile{pt("n", 1, 7, 7)}
	res, err := ValidateMove(b, placed, mapOracle{"tɛn": {"ten"}})
	is.NoErr(err)
	is.Equal(res.Words[0].Word, "tɛn")
	// center star under the new n doubles the word: (1+2+1)*2 = 8
	is.Equal(res.TotalScore, 8)
}

func TestEasterEggs(t *testing.T) {
	is := is.New(t)

	placed := []PlacedTile{
		pt("w", 4, 7, 6),
		pt("ʌ", 2, 7, 7),
		pt("ɡ", 3, 7, 8),
	}
	res, err := ValidateMove(board.New(), placed, mapOracle{"wʌɡ": {"wug"}})
	is.NoErr(err)
	is.True(res.EasterEgg != nil)
	is.Equal(res.EasterEgg.Effect, EffectWugRain)
	is.Equal(res.EasterEgg.EnglishWords, []string{"wug"})
}

func TestEasterEggSubstringMatch(t *testing.T) {
	is := is.New(t)

	placed := []PlacedTile{
		pt("t͡ʃ", 8, 7, 6),
		pt("ɒ", 2, 7, 7),
	}
	res, err := ValidateMove(board.New(), placed,
		mapOracle{"t͡ʃɒ": {"Chomskyan"}})
	is.NoErr(err)
	is.True(res.EasterEgg != nil)
	is.Equal(res.EasterEgg.Effect, EffectChomskyReaction)
}

func TestNoEasterEggOnOrdinaryWords(t *testing.T) {
	is := is.New(t)

	placed := []PlacedTile{
		pt("n", 1, 7, 6),
		pt("ɛ", 2, 7, 7),
		pt("t", 1, 7, 8),
	}
	res, err := ValidateMove(board.New(), placed, mapOracle{"nɛt": {"net"}})
	is.NoErr(err)
	is.True(res.EasterEgg == nil)
}

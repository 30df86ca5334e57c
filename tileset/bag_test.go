package tileset

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func countByChar(tiles []Tile) map[string]int {
	counts := map[string]int{}
	for _, t := range tiles {
		counts[t.Char]++
	}
	return counts
}

func TestNewBagMatchesInventory(t *testing.T) {
	is := is.New(t)

	bag := NewBag()
	counts := countByChar(bag.Contents())

	total := 0
	for _, def := range Inventory() {
		is.Equal(counts[def.Char], def.Count) // every char has its engraved copy count
		total += def.Count
	}
	is.Equal(bag.TilesRemaining(), total)
	is.Equal(len(counts), NumTileKinds())
}

func TestBagTileIDsUnique(t *testing.T) {
	bag := NewBag()
	seen := map[string]bool{}
	for _, tile := range bag.Contents() {
		assert.False(t, seen[tile.ID], "duplicate tile id %v", tile.ID)
		seen[tile.ID] = true
	}
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)

	bag := NewBag()
	before := countByChar(bag.Contents())
	total := bag.TilesRemaining()

	drawn := bag.DrawAtMost(7)
	is.Equal(len(drawn), 7)
	is.Equal(bag.TilesRemaining(), total-7)

	// drawn plus remaining must re-form the original multiset
	after := countByChar(append(bag.Contents(), drawn...))
	is.Equal(after, before)
}

func TestDrawAtMostDrainsShortBag(t *testing.T) {
	is := is.New(t)

	bag := NewBag()
	total := bag.TilesRemaining()
	drawn := bag.DrawAtMost(total + 50)
	is.Equal(len(drawn), total) // short bags drain, they don't error
	is.Equal(bag.TilesRemaining(), 0)

	is.Equal(len(bag.DrawAtMost(7)), 0)
}

func TestPhonemeClasses(t *testing.T) {
	sh := Tile{Char: "ʃ", Category: Consonant}
	assert.True(t, sh.IsFricative())
	assert.False(t, sh.IsPlosive())

	glottal := Tile{Char: "ʔ", Category: Consonant}
	assert.True(t, glottal.IsPlosive())

	eng := Tile{Char: "ŋ", Category: Consonant}
	assert.True(t, eng.IsNasal())

	schwa := Tile{Char: "ə", Category: Vowel}
	assert.False(t, schwa.IsFricative())
}

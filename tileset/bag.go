package tileset

import (
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles. Tiles are drawn from the front; the bag only
// ever shrinks.
type Bag struct {
	tiles []Tile
}

// NewBag expands the inventory table into individual tile instances, each
// with a fresh unique ID, and shuffles them.
func NewBag() *Bag {
	var tiles []Tile
	for _, def := range tileDefs {
		for i := 0; i < def.Count; i++ {
			tiles = append(tiles, def.instance())
		}
	}
	b := &Bag{tiles: tiles}
	b.Shuffle()
	return b
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if
// there are fewer tiles than n, and even draw no tiles at all. Draining
// the bag is a normal end-of-game condition, not an error.
func (b *Bag) DrawAtMost(n int) []Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	if n < 0 {
		n = 0
	}
	drawn := make([]Tile, n)
	copy(drawn, b.tiles[:n])
	b.tiles = b.tiles[n:]
	return drawn
}

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Contents returns a copy of the remaining tiles, in draw order.
func (b *Bag) Contents() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

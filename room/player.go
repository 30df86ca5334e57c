package room

import "github.com/fonetik/wugboard/tileset"

// RackLimit is the normal rack size; racks are replenished up to this
// many tiles after a move.
const RackLimit = 7

// Player is one seat in a room. The ID is the connection identity that
// joined. Racks are visible to every participant in snapshots; there is
// no rack secrecy in this game.
type Player struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Score  int            `json:"score"`
	Rack   []tileset.Tile `json:"tiles"`
	IsHost bool           `json:"isHost"`
}

// takeFromRack removes the tile with the given id from the rack and
// returns it. The second return is false if no such tile is held.
func (p *Player) takeFromRack(tileID string) (tileset.Tile, bool) {
	for i, t := range p.Rack {
		if t.ID == tileID {
			p.Rack = append(p.Rack[:i], p.Rack[i+1:]...)
			return t, true
		}
	}
	return tileset.Tile{}, false
}

func (p *Player) draw(bag *tileset.Bag) {
	need := RackLimit - len(p.Rack)
	if need > 0 {
		p.Rack = append(p.Rack, bag.DrawAtMost(need)...)
	}
}

// Package room holds the authoritative per-room game state and the
// registry of active rooms. All mutation happens in response to exactly
// one inbound action at a time; the server's dispatcher serializes
// access, so a room never sees a half-applied move.
package room

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fonetik/wugboard/board"
	"github.com/fonetik/wugboard/phondict"
	"github.com/fonetik/wugboard/protocol"
	"github.com/fonetik/wugboard/scoring"
	"github.com/fonetik/wugboard/tileset"
)

// MaxPlayers is the number of seats per room.
const MaxPlayers = 2

var (
	ErrRoomExists     = errors.New("room with this invite code already exists")
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotYourTurn    = errors.New("not your turn")
)

// Room is one game in progress. Players are kept in join order;
// CurrentPlayerIndex indexes into that order.
type Room struct {
	ID                 string
	InviteCode         string
	Players            []*Player
	Board              *board.Board
	Bag                *tileset.Bag
	CurrentPlayerIndex int
	Started            bool
	GameOver           bool
	Winner             *Player
	History            []protocol.MoveRecord
}

func newRoom(inviteCode, hostName, hostConnID string) *Room {
	r := &Room{
		ID:         uuid.NewString(),
		InviteCode: inviteCode,
		Board:      board.New(),
		Bag:        tileset.NewBag(),
	}
	r.Players = append(r.Players, &Player{ID: hostConnID, Name: hostName, IsHost: true})
	return r
}

func (r *Room) player(connID string) (*Player, int) {
	for i, p := range r.Players {
		if p.ID == connID {
			return p, i
		}
	}
	return nil, -1
}

// Join seats a new player. When the second seat fills, each player is
// dealt a full rack and the game starts; the returned flag tells the
// caller to broadcast game-started instead of room-joined.
func (r *Room) Join(connID, name string) (started bool, err error) {
	if len(r.Players) >= MaxPlayers {
		return false, ErrRoomFull
	}
	r.Players = append(r.Players, &Player{ID: connID, Name: name})
	if len(r.Players) == MaxPlayers {
		for _, p := range r.Players {
			p.draw(r.Bag)
		}
		r.Started = true
		log.Info().Str("room", r.InviteCode).Msg("game started")
		return true, nil
	}
	return false, nil
}

// ApplyMove validates and applies a move by the given connection. On any
// rejection the room is left untouched. On success the placed tiles move
// from the rack to the board, the rack is replenished from the bag, the
// score is credited, the move is recorded, and the turn advances.
func (r *Room) ApplyMove(connID string, refs []protocol.PlacedTileRef,
	oracle phondict.Oracle) (*scoring.Result, error) {

	actor, idx := r.player(connID)
	if actor == nil {
		return nil, ErrPlayerNotFound
	}
	if idx != r.CurrentPlayerIndex {
		return nil, ErrNotYourTurn
	}

	// Resolve tile ids against the actor's rack. An id the rack doesn't
	// hold is skipped with a warning, not a hard error.
	placed := make([]scoring.PlacedTile, 0, len(refs))
	taken := map[string]bool{}
	usedPos := map[[2]int]bool{}
	for _, ref := range refs {
		if !board.InBounds(ref.Row, ref.Col) {
			return nil, &scoring.RejectionError{Reason: "placement is off the board"}
		}
		if !r.Board.IsEmpty(ref.Row, ref.Col) || usedPos[[2]int{ref.Row, ref.Col}] {
			return nil, &scoring.RejectionError{Reason: "cell is already occupied"}
		}
		usedPos[[2]int{ref.Row, ref.Col}] = true
		tile, ok := r.findInRack(actor, ref.TileID, taken)
		if !ok {
			log.Warn().Str("room", r.InviteCode).Str("tileId", ref.TileID).
				Msg("placed tile not in rack; skipping")
			continue
		}
		taken[ref.TileID] = true
		placed = append(placed, scoring.PlacedTile{Tile: tile, Row: ref.Row, Col: ref.Col})
	}

	result, err := scoring.ValidateMove(r.Board, placed, oracle)
	if err != nil {
		return nil, err
	}

	for _, p := range placed {
		if _, ok := actor.takeFromRack(p.Tile.ID); !ok {
			// Resolved above from this same rack; cannot happen.
			log.Error().Str("tileId", p.Tile.ID).Msg("rack tile vanished mid-move")
		}
		if err := r.Board.PlaceTile(p.Row, p.Col, p.Tile); err != nil {
			log.Error().Err(err).Msg("placing validated tile")
		}
	}
	actor.draw(r.Bag)
	actor.Score += result.TotalScore

	record := protocol.MoveRecord{
		PlayerIndex: idx,
		Tiles:       placed,
		Score:       result.TotalScore,
		Words:       result.WordStrings(),
	}
	r.History = append(r.History, record)

	if r.Bag.TilesRemaining() == 0 && len(actor.Rack) == 0 {
		r.finish()
	} else {
		r.advanceTurn()
	}
	return result, nil
}

func (r *Room) findInRack(p *Player, tileID string, taken map[string]bool) (tileset.Tile, bool) {
	if taken[tileID] {
		return tileset.Tile{}, false
	}
	for _, t := range p.Rack {
		if t.ID == tileID {
			return t, true
		}
	}
	return tileset.Tile{}, false
}

// PassTurn advances the turn. Any seated player may pass; only
// membership is checked, not turn order.
func (r *Room) PassTurn(connID string) error {
	if _, idx := r.player(connID); idx < 0 {
		return ErrPlayerNotFound
	}
	r.advanceTurn()
	return nil
}

func (r *Room) advanceTurn() {
	if len(r.Players) == 0 {
		return
	}
	r.CurrentPlayerIndex = (r.CurrentPlayerIndex + 1) % len(r.Players)
}

// finish ends the game: the bag is drained and the mover's rack is
// empty. Highest cumulative score wins; a tie has no winner.
func (r *Room) finish() {
	r.GameOver = true
	var best *Player
	tie := false
	for _, p := range r.Players {
		switch {
		case best == nil || p.Score > best.Score:
			best = p
			tie = false
		case p.Score == best.Score:
			tie = true
		}
	}
	if !tie {
		r.Winner = best
	}
	log.Info().Str("room", r.InviteCode).Msg("game over")
}

// removePlayer drops the player for the given connection. It returns the
// player's id and whether anyone was actually removed, so a double
// disconnect is a no-op.
func (r *Room) removePlayer(connID string) (playerID string, removed bool) {
	p, idx := r.player(connID)
	if p == nil {
		return "", false
	}
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	if len(r.Players) > 0 {
		r.CurrentPlayerIndex %= len(r.Players)
	} else {
		r.CurrentPlayerIndex = 0
	}
	return p.ID, true
}

// GameStats tallies phoneme-class statistics over every move played so
// far, for the end-of-game summary.
func (r *Room) GameStats() scoring.Stats {
	moves := make([][]scoring.PlacedTile, len(r.History))
	for i, rec := range r.History {
		moves[i] = rec.Tiles
	}
	return scoring.GameStats(moves)
}

// Snapshot builds the full game-state snapshot broadcast to clients.
func (r *Room) Snapshot() *protocol.GameState {
	gs := &protocol.GameState{
		Board:              r.Board.Snapshot(),
		Players:            make([]protocol.PlayerState, len(r.Players)),
		CurrentPlayerIndex: r.CurrentPlayerIndex,
		TileBag:            r.Bag.Contents(),
		GameStarted:        r.Started,
		GameOver:           r.GameOver,
		MoveHistory:        r.History,
	}
	for i, p := range r.Players {
		gs.Players[i] = playerState(p)
	}
	if r.Winner != nil {
		ws := playerState(r.Winner)
		gs.Winner = &ws
	}
	if len(r.History) > 0 {
		gs.LastMove = &r.History[len(r.History)-1]
	}
	return gs
}

func playerState(p *Player) protocol.PlayerState {
	rack := make([]tileset.Tile, len(p.Rack))
	copy(rack, p.Rack)
	return protocol.PlayerState{
		ID:     p.ID,
		Name:   p.Name,
		Score:  p.Score,
		Tiles:  rack,
		IsHost: p.IsHost,
	}
}

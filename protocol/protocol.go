// Package protocol defines the wire messages exchanged with game
// clients. Inbound payloads are decoded into a tagged variant and
// validated here, before anything reaches the room state machine.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/fonetik/wugboard/board"
	"github.com/fonetik/wugboard/scoring"
	"github.com/fonetik/wugboard/tileset"
)

// Client-to-server message types.
const (
	MsgCreateRoom = "create-room"
	MsgJoinRoom   = "join-room"
	MsgMakeMove   = "make-move"
	MsgPassTurn   = "pass-turn"
)

// Server-to-client message types.
const (
	MsgRoomCreated        = "room-created"
	MsgRoomJoined         = "room-joined"
	MsgGameStarted        = "game-started"
	MsgGameUpdated        = "game-updated"
	MsgPlayerDisconnected = "player-disconnected"
	MsgError              = "error"
)

// PlacedTileRef names one tile out of the sender's rack and where it
// goes. The server resolves the id against the rack; clients never send
// full tile data.
type PlacedTileRef struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	TileID string `json:"tileId"`
}

// ClientMessage is the decoded inbound action.
type ClientMessage struct {
	Type       string          `json:"type"`
	InviteCode string          `json:"inviteCode"`
	PlayerName string          `json:"playerName,omitempty"`
	Tiles      []PlacedTileRef `json:"tiles,omitempty"`
}

// Decode parses and validates a raw client payload. Unknown or
// malformed messages are rejected here so the room layer only ever sees
// well-formed actions.
func Decode(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}
	switch msg.Type {
	case MsgCreateRoom, MsgJoinRoom:
		if msg.PlayerName == "" {
			return nil, fmt.Errorf("%v requires a player name", msg.Type)
		}
	case MsgMakeMove:
		if msg.InviteCode == "" {
			return nil, fmt.Errorf("%v requires an invite code", msg.Type)
		}
		if len(msg.Tiles) == 0 {
			return nil, fmt.Errorf("%v requires at least one tile", msg.Type)
		}
	case MsgPassTurn:
		if msg.InviteCode == "" {
			return nil, fmt.Errorf("%v requires an invite code", msg.Type)
		}
	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}
	return &msg, nil
}

// PlayerState is a player as seen in a snapshot. Racks are included for
// everyone; rack secrecy is deliberately not a feature.
type PlayerState struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Score  int            `json:"score"`
	Tiles  []tileset.Tile `json:"tiles"`
	IsHost bool           `json:"isHost"`
}

// MoveRecord is one entry of the append-only move history.
type MoveRecord struct {
	PlayerIndex int                  `json:"playerIndex"`
	Tiles       []scoring.PlacedTile `json:"tiles"`
	Score       int                  `json:"score"`
	Words       []string             `json:"words"`
}

// GameState is the full state snapshot broadcast after every action.
type GameState struct {
	Board              [][]board.Cell `json:"board"`
	Players            []PlayerState  `json:"players"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	TileBag            []tileset.Tile `json:"tileBag"`
	GameStarted        bool           `json:"gameStarted"`
	GameOver           bool           `json:"gameOver"`
	Winner             *PlayerState   `json:"winner"`
	LastMove           *MoveRecord    `json:"lastMove"`
	MoveHistory        []MoveRecord   `json:"moveHistory"`
}

// ServerMessage is the outbound envelope. Fields not relevant to the
// message type stay empty and are omitted on the wire.
type ServerMessage struct {
	Type       string             `json:"type"`
	InviteCode string             `json:"inviteCode,omitempty"`
	PlayerID   string             `json:"playerId,omitempty"`
	Message    string             `json:"message,omitempty"`
	GameState  *GameState         `json:"gameState,omitempty"`
	EasterEgg  *scoring.EasterEgg `json:"easterEgg,omitempty"`
	GameStats  *scoring.Stats     `json:"gameStats,omitempty"`
}

// Error builds an error notification for the originating client.
func Error(message string) *ServerMessage {
	return &ServerMessage{Type: MsgError, Message: message}
}

// Package events publishes room lifecycle and game events over NATS for
// external observers (spectator views, ops tooling). It is optional:
// with no NATS URL configured every publish is a no-op, and publish
// failures never reach the players.
package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/fonetik/wugboard/scoring"
)

// Event is one observable game happening.
type Event struct {
	Kind       string         `json:"kind"`
	InviteCode string         `json:"inviteCode"`
	PlayerID   string         `json:"playerId,omitempty"`
	Score      int            `json:"score,omitempty"`
	Words      []string       `json:"words,omitempty"`
	Stats      *scoring.Stats `json:"stats,omitempty"`
	At         time.Time      `json:"at"`
}

// Event kinds.
const (
	RoomCreated        = "room-created"
	GameStarted        = "game-started"
	MovePlayed         = "move-played"
	TurnPassed         = "turn-passed"
	PlayerDisconnected = "player-disconnected"
	RoomDestroyed      = "room-destroyed"
	GameOver           = "game-over"
)

// Publisher fans events out to a NATS subject per room.
type Publisher struct {
	nc *nats.Conn
}

// Connect dials NATS. An empty URL returns a disabled publisher.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		return &Publisher{}, nil
	}
	nc, err := nats.Connect(url, nats.Name("wugboard"))
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", url).Msg("connected to NATS")
	return &Publisher{nc: nc}, nil
}

// Publish sends the event on wugboard.rooms.<inviteCode>. Failures are
// logged and swallowed; event delivery is best-effort.
func (p *Publisher) Publish(evt Event) {
	if p == nil || p.nc == nil {
		return
	}
	evt.At = time.Now().UTC()
	data, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Msg("marshalling event")
		return
	}
	if err := p.nc.Publish("wugboard.rooms."+evt.InviteCode, data); err != nil {
		log.Warn().Err(err).Str("kind", evt.Kind).Msg("publishing event")
	}
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p != nil && p.nc != nil {
		p.nc.Close()
	}
}

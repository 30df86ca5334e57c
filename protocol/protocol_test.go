package protocol

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestDecodeValidMessages(t *testing.T) {
	is := is.New(t)

	msg, err := Decode([]byte(`{"type":"create-room","inviteCode":"chomsky","playerName":"noam"}`))
	is.NoErr(err)
	is.Equal(msg.Type, MsgCreateRoom)
	is.Equal(msg.InviteCode, "chomsky")
	is.Equal(msg.PlayerName, "noam")

	msg, err = Decode([]byte(`{"type":"make-move","inviteCode":"chomsky",` +
		`"tiles":[{"row":7,"col":7,"tileId":"abc"}]}`))
	is.NoErr(err)
	is.Equal(len(msg.Tiles), 1)
	is.Equal(msg.Tiles[0].TileID, "abc")
	is.Equal(msg.Tiles[0].Row, 7)

	msg, err = Decode([]byte(`{"type":"pass-turn","inviteCode":"chomsky"}`))
	is.NoErr(err)
	is.Equal(msg.Type, MsgPassTurn)
}

func TestDecodeRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"type":`},
		{"unknown type", `{"type":"launch-missiles"}`},
		{"create without name", `{"type":"create-room","inviteCode":"x"}`},
		{"join without name", `{"type":"join-room","inviteCode":"x"}`},
		{"move without invite code", `{"type":"make-move","tiles":[{"row":1,"col":1,"tileId":"a"}]}`},
		{"move without tiles", `{"type":"make-move","inviteCode":"x"}`},
		{"pass without invite code", `{"type":"pass-turn"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestErrorEnvelope(t *testing.T) {
	is := is.New(t)

	msg := Error("not your turn")
	is.Equal(msg.Type, MsgError)
	is.Equal(msg.Message, "not your turn")
	is.True(msg.GameState == nil)
}

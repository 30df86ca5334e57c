package room

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Registry owns every active room, keyed by invite code. It is the only
// process-wide mutable state. The server dispatcher is the sole mutator,
// but the map is still mutex-guarded so read-only callers (health
// endpoints, tests) stay safe.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// Create allocates a room under the given invite code with the creator
// as host. An empty code gets a generated one.
func (reg *Registry) Create(inviteCode, hostName, connID string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if inviteCode == "" {
		inviteCode = reg.suggestCodeLocked()
	}
	if _, exists := reg.rooms[inviteCode]; exists {
		return nil, ErrRoomExists
	}
	r := newRoom(inviteCode, hostName, connID)
	reg.rooms[inviteCode] = r
	log.Info().Str("room", inviteCode).Str("host", hostName).Msg("room created")
	return r, nil
}

// Get looks a room up by invite code.
func (reg *Registry) Get(inviteCode string) (*Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rooms[inviteCode]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// NumRooms returns the number of active rooms.
func (reg *Registry) NumRooms() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// RemoveConn handles a disconnect: it finds the room the connection
// belongs to and removes that player. An emptied room is destroyed. The
// call is idempotent; a connection in no room returns found == false.
func (reg *Registry) RemoveConn(connID string) (r *Room, playerID string, empty, found bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for code, room := range reg.rooms {
		pid, removed := room.removePlayer(connID)
		if !removed {
			continue
		}
		if len(room.Players) == 0 {
			delete(reg.rooms, code)
			log.Info().Str("room", code).Msg("room destroyed")
			return room, pid, true, true
		}
		return room, pid, false, true
	}
	return nil, "", false, false
}

// SuggestCode returns an invite code not currently in use.
func (reg *Registry) SuggestCode() string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.suggestCodeLocked()
}

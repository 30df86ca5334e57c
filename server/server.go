// Package server is the network-facing coordinator. It accepts websocket
// connections, decodes client actions, and funnels every action through a
// single dispatcher goroutine that owns the room registry. One action
// completes fully (mutation plus broadcast) before the next is observed,
// which is the whole concurrency story: rooms need no locks of their own.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/fonetik/wugboard/config"
	"github.com/fonetik/wugboard/events"
	"github.com/fonetik/wugboard/phondict"
	"github.com/fonetik/wugboard/protocol"
	"github.com/fonetik/wugboard/room"
	"github.com/fonetik/wugboard/scoring"
)

// action is one unit of dispatcher work: either a decoded client message
// or a disconnect notification.
type action struct {
	c          *client
	msg        *protocol.ClientMessage
	disconnect bool
}

type Server struct {
	cfg      *config.Config
	registry *room.Registry
	oracle   phondict.Oracle
	events   *events.Publisher

	actions chan action
	// roomConns maps an invite code to the clients joined to that room,
	// for broadcasting. Only the dispatcher touches it.
	roomConns map[string]map[string]*client

	upgrader websocket.Upgrader
}

func New(cfg *config.Config, oracle phondict.Oracle, pub *events.Publisher) *Server {
	return &Server{
		cfg:       cfg,
		registry:  room.NewRegistry(),
		oracle:    oracle,
		events:    pub,
		actions:   make(chan action, 256),
		roomConns: make(map[string]map[string]*client),
		upgrader: websocket.Upgrader{
			// The UI is served from elsewhere (desktop shell, tunnel);
			// origin checking is not useful here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Registry exposes the room registry, mainly for tests and health
// endpoints.
func (s *Server) Registry() *room.Registry {
	return s.registry
}

// Run serves websocket connections until ctx is cancelled. The
// dispatcher and HTTP listener run under one errgroup; cancelling ctx
// shuts the listener down gracefully.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{Addr: s.cfg.ListenAddr, Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.dispatch(ctx)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("addr", s.cfg.ListenAddr).Msg("game server listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(context.Background())
	})
	return g.Wait()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := &client{id: uuid.NewString(), conn: conn}
	log.Info().Str("conn", c.id).Msg("client connected")
	go s.readLoop(c)
}

// readLoop decodes inbound frames and enqueues them for the dispatcher.
// Messages from one connection are enqueued in the order sent.
func (s *Server) readLoop(c *client) {
	defer func() {
		s.actions <- action{c: c, disconnect: true}
		c.close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			log.Info().Str("conn", c.id).Msg("client disconnected")
			return
		}
		msg, err := protocol.Decode(data)
		if err != nil {
			c.send(protocol.Error(err.Error()))
			continue
		}
		s.actions <- action{c: c, msg: msg}
	}
}

// dispatch is the single mutator of all room state.
func (s *Server) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-s.actions:
			if a.disconnect {
				s.handleDisconnect(a.c)
				continue
			}
			s.handleMessage(a.c, a.msg)
		}
	}
}

func (s *Server) handleMessage(c *client, msg *protocol.ClientMessage) {
	var err error
	switch msg.Type {
	case protocol.MsgCreateRoom:
		err = s.handleCreate(c, msg)
	case protocol.MsgJoinRoom:
		err = s.handleJoin(c, msg)
	case protocol.MsgMakeMove:
		err = s.handleMove(c, msg)
	case protocol.MsgPassTurn:
		err = s.handlePass(c, msg)
	}
	if err != nil {
		// Every error out of the room layer is a user-correctable
		// rejection; it goes to the originator only and no state changed.
		c.send(protocol.Error(err.Error()))
	}
}

func (s *Server) handleCreate(c *client, msg *protocol.ClientMessage) error {
	r, err := s.registry.Create(msg.InviteCode, msg.PlayerName, c.id)
	if err != nil {
		return err
	}
	s.roomConns[r.InviteCode] = map[string]*client{c.id: c}
	c.send(&protocol.ServerMessage{
		Type:       protocol.MsgRoomCreated,
		InviteCode: r.InviteCode,
		PlayerID:   c.id,
		GameState:  r.Snapshot(),
	})
	s.events.Publish(events.Event{Kind: events.RoomCreated, InviteCode: r.InviteCode, PlayerID: c.id})
	return nil
}

func (s *Server) handleJoin(c *client, msg *protocol.ClientMessage) error {
	r, err := s.registry.Get(msg.InviteCode)
	if err != nil {
		return err
	}
	started, err := r.Join(c.id, msg.PlayerName)
	if err != nil {
		return err
	}
	conns := s.roomConns[r.InviteCode]
	if conns == nil {
		conns = make(map[string]*client)
		s.roomConns[r.InviteCode] = conns
	}
	conns[c.id] = c

	if started {
		s.broadcast(r, &protocol.ServerMessage{
			Type:      protocol.MsgGameStarted,
			GameState: r.Snapshot(),
		})
		s.events.Publish(events.Event{Kind: events.GameStarted, InviteCode: r.InviteCode})
		return nil
	}
	c.send(&protocol.ServerMessage{
		Type:       protocol.MsgRoomJoined,
		InviteCode: r.InviteCode,
		PlayerID:   c.id,
		GameState:  r.Snapshot(),
	})
	return nil
}

func (s *Server) handleMove(c *client, msg *protocol.ClientMessage) error {
	r, err := s.registry.Get(msg.InviteCode)
	if err != nil {
		return err
	}
	result, err := r.ApplyMove(c.id, msg.Tiles, s.oracle)
	if err != nil {
		if !scoring.IsRejection(err) && !errors.Is(err, room.ErrPlayerNotFound) &&
			!errors.Is(err, room.ErrNotYourTurn) {
			log.Error().Err(err).Str("room", r.InviteCode).Msg("move failed unexpectedly")
		}
		return err
	}
	update := &protocol.ServerMessage{
		Type:      protocol.MsgGameUpdated,
		GameState: r.Snapshot(),
		EasterEgg: result.EasterEgg,
	}
	if r.GameOver {
		stats := r.GameStats()
		update.GameStats = &stats
	}
	s.broadcast(r, update)
	s.events.Publish(events.Event{
		Kind:       events.MovePlayed,
		InviteCode: r.InviteCode,
		PlayerID:   c.id,
		Score:      result.TotalScore,
		Words:      result.WordStrings(),
	})
	if r.GameOver {
		stats := r.GameStats()
		s.events.Publish(events.Event{Kind: events.GameOver, InviteCode: r.InviteCode, Stats: &stats})
	}
	return nil
}

func (s *Server) handlePass(c *client, msg *protocol.ClientMessage) error {
	r, err := s.registry.Get(msg.InviteCode)
	if err != nil {
		return err
	}
	if err := r.PassTurn(c.id); err != nil {
		return err
	}
	s.broadcast(r, &protocol.ServerMessage{
		Type:      protocol.MsgGameUpdated,
		GameState: r.Snapshot(),
	})
	s.events.Publish(events.Event{Kind: events.TurnPassed, InviteCode: r.InviteCode, PlayerID: c.id})
	return nil
}

// handleDisconnect removes the player from whatever room the connection
// was in. Already-removed connections fall through harmlessly.
func (s *Server) handleDisconnect(c *client) {
	r, playerID, empty, found := s.registry.RemoveConn(c.id)
	if !found {
		return
	}
	conns := s.roomConns[r.InviteCode]
	delete(conns, c.id)
	if empty {
		delete(s.roomConns, r.InviteCode)
		s.events.Publish(events.Event{Kind: events.RoomDestroyed, InviteCode: r.InviteCode})
		return
	}
	s.broadcast(r, &protocol.ServerMessage{
		Type:     protocol.MsgPlayerDisconnected,
		PlayerID: playerID,
	})
	s.events.Publish(events.Event{Kind: events.PlayerDisconnected, InviteCode: r.InviteCode, PlayerID: playerID})
}

func (s *Server) broadcast(r *room.Room, msg *protocol.ServerMessage) {
	for _, c := range s.roomConns[r.InviteCode] {
		c.send(msg)
	}
}

package service

import (
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// The connections watching a specific game
type sessionConnections struct {
	connections map[string]Conn // connID -> connection
	mu          sync.Mutex
}

// Session is one live hot-seat game and the renderers attached to it.
// The engine is single-threaded, so every call into it holds mu. State
// broadcasts also happen under mu so renderers see states in move order.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *model.Game
	recorded    bool
	connections *sessionConnections
}

func newSession(id string) *Session {
	return &Session{
		ID:   id,
		game: model.NewGame(),
		connections: &sessionConnections{
			connections: make(map[string]Conn),
		},
	}
}

func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Snapshot()
}

func (s *Session) selectPiece(square int) []model.Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.SelectPiece(square)
}

// attemptMove plays from->to and broadcasts the new state. finished is true
// only on the move that ended the game.
func (s *Session) attemptMove(from, to int) (state model.GameState, finished bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Phase().IsTerminal() {
		return s.game.Snapshot(), false, ErrGameOver
	}
	if !s.game.AttemptMove(from, to) {
		return s.game.Snapshot(), false, ErrIllegalMove
	}

	state = s.game.Snapshot()
	if state.Phase.IsTerminal() && !s.recorded {
		s.recorded = true
		finished = true
	}
	s.broadcast(stateMessage(state))
	return state, finished, nil
}

func (s *Session) reset() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Reset()
	s.recorded = false
	state := s.game.Snapshot()
	s.broadcast(stateMessage(state))
	return state
}

// attach registers conn and sends it the current state. No move can land
// between the two, so the first state a renderer gets is never stale.
func (s *Session) attach(connID string, conn Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addConnection(connID, conn)
	if err := s.send(connID, stateMessage(s.game.Snapshot())); err != nil {
		s.removeConnection(connID)
		return err
	}
	return nil
}

func (s *Session) addConnection(connID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	s.connections.connections[connID] = conn
	log.Debugf("game %s: registered connection %s", s.ID, connID)
}

func (s *Session) removeConnection(connID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.connections[connID]; exists {
		delete(s.connections.connections, connID)
		log.Debugf("game %s: unregistered connection %s", s.ID, connID)
	}
}

func (s *Session) connectionCount() int {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	return len(s.connections.connections)
}

// send writes one message to one connection. Writes are serialised with
// broadcasts because a websocket allows a single writer at a time.
func (s *Session) send(connID string, msg ws.Message) error {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	conn, exists := s.connections.connections[connID]
	if !exists {
		return nil
	}
	return conn.WriteJSON(msg)
}

// broadcast writes msg to every connection and drops the ones that fail.
func (s *Session) broadcast(msg ws.Message) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	for connID, conn := range s.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: dropping connection %s: %v", s.ID, connID, err)
			delete(s.connections.connections, connID)
		}
	}
}

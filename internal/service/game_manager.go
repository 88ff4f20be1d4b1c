// service/game_manager.go
package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/storage"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// ResultStore keeps the tally of finished games.
type ResultStore interface {
	RecordResult(storage.Outcome) error
	Stats() (storage.Stats, error)
}

type GameManager struct {
	games   map[string]*Session
	results ResultStore
	mu      sync.RWMutex
}

func NewGameManager(results ResultStore) *GameManager {
	return &GameManager{
		games:   make(map[string]*Session),
		results: results,
	}
}

func (gm *GameManager) CreateGame() string {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gameID := uuid.New().String()
	gm.games[gameID] = newSession(gameID)
	log.Infof("game %s: created", gameID)
	return gameID
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	return session, nil
}

func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	delete(gm.games, gameID)
	log.Infof("game %s: removed", gameID)
	return nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.State(), nil
}

func (gm *GameManager) SelectPiece(gameID string, square int) ([]model.Move, error) {
	if !model.ValidIndex(square) {
		return nil, fmt.Errorf("square %d: %w", square, ErrInvalidSquare)
	}
	session, err := gm.GetSession(gameID)
	if err != nil {
		return nil, err
	}
	return session.selectPiece(square), nil
}

// MakeMove plays from->to and broadcasts the new state. A rejected move
// returns ErrIllegalMove together with the unchanged state.
func (gm *GameManager) MakeMove(gameID string, from, to int) (model.GameState, error) {
	if !model.ValidIndex(from) || !model.ValidIndex(to) {
		return model.GameState{}, fmt.Errorf("move %d->%d: %w", from, to, ErrInvalidSquare)
	}
	session, err := gm.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	state, finished, err := session.attemptMove(from, to)
	if err != nil {
		log.Debugf("game %s: rejected %s%s: %v", gameID, model.SquareName(from), model.SquareName(to), err)
		return state, fmt.Errorf("move %s%s: %w", model.SquareName(from), model.SquareName(to), err)
	}
	log.Debugf("game %s: %s played %s%s", gameID, state.SideToMove.Opponent(), model.SquareName(from), model.SquareName(to))

	if finished {
		gm.recordResult(gameID, state)
	}
	return state, nil
}

func (gm *GameManager) ResetGame(gameID string) (model.GameState, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	state := session.reset()
	log.Infof("game %s: reset", gameID)
	return state, nil
}

func (gm *GameManager) Stats() (storage.Stats, error) {
	return gm.results.Stats()
}

func (gm *GameManager) recordResult(gameID string, state model.GameState) {
	outcome := storage.OutcomeDraw
	switch state.Winner {
	case model.White:
		outcome = storage.OutcomeWhiteWins
	case model.Black:
		outcome = storage.OutcomeBlackWins
	}
	log.Infof("game %s: %s, result %s", gameID, state.Phase, outcome)

	if err := gm.results.RecordResult(outcome); err != nil {
		log.Errorf("game %s: recording result: %v", gameID, err)
	}
}

// RegisterConnection attaches a renderer to the game and sends it the current state.
func (gm *GameManager) RegisterConnection(gameID string, conn Conn) (string, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return "", err
	}

	connID := uuid.New().String()
	if err := session.attach(connID, conn); err != nil {
		return "", fmt.Errorf("send initial state: %w", err)
	}
	return connID, nil
}

func (gm *GameManager) UnregisterConnection(gameID, connID string) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return
	}
	session.removeConnection(connID)
}

// Send delivers a message to a single connection of a game.
func (gm *GameManager) Send(gameID, connID string, msg ws.Message) error {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}
	return session.send(connID, msg)
}

func stateMessage(state model.GameState) ws.Message {
	return NewMessage(ws.MessageTypeGameState, state)
}

// NewMessage wraps payload in a message envelope.
func NewMessage(t ws.MessageType, payload interface{}) ws.Message {
	return ws.Message{Type: t, Payload: mustJSON(payload)}
}

// Helper function for JSON marshaling
func mustJSON(v interface{}) json.RawMessage {
	bytes, err := json.Marshal(v)
	if err != nil {
		// Only engine and ws types are marshalled here, and all of them encode.
		panic(err)
	}
	return bytes
}

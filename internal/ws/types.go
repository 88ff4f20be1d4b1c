package ws

import (
	"encoding/json"

	"github.com/benbeisheim/hotseat-chess/internal/model"
)

// MessageType represents the different kinds of messages exchanged with the board renderer
type MessageType string

const (
	// Renderer -> server
	MessageTypeSelect  MessageType = "select"
	MessageTypeMove    MessageType = "move"
	MessageTypeRelease MessageType = "release"
	MessageTypeReset   MessageType = "reset"

	// Server -> renderer
	MessageTypeGameState MessageType = "gameState"
	MessageTypeSelection MessageType = "selection"
	MessageTypeRejected  MessageType = "rejected"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type SelectPayload struct {
	Square int `json:"square"`
}

type MovePayload struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ReleasePayload is a drag that ended at pixel (X, Y) on the rendered board
// while the piece from HeldFrom was being held.
type ReleasePayload struct {
	HeldFrom int `json:"heldFrom"`
	X        int `json:"x"`
	Y        int `json:"y"`
}

// SelectionPayload answers a select with the legal moves of the piece on Square.
type SelectionPayload struct {
	Square int          `json:"square"`
	Moves  []model.Move `json:"moves"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("gameID").(string)

	// Register this connection with the game
	connID, err := wsc.gameService.RegisterConnection(gameID, c)
	if err != nil {
		log.Warnf("game %s: failed to register connection: %v", gameID, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, connID)

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: read error: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.reply(gameID, connID, service.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: "malformed message"}))
			continue
		}
		if reply, ok := wsc.HandleMessage(gameID, msg); ok {
			wsc.reply(gameID, connID, reply)
		}
	}
}

// HandleMessage applies one renderer message to the game. Accepted moves and
// resets reach the renderer through the game's broadcast, so they produce no
// reply; everything else is answered to the sender only.
func (wsc *WebSocketController) HandleMessage(gameID string, msg ws.Message) (ws.Message, bool) {
	var err error
	switch msg.Type {
	case ws.MessageTypeSelect:
		var payload ws.SelectPayload
		if err = json.Unmarshal(msg.Payload, &payload); err != nil {
			break
		}
		moves, selErr := wsc.gameService.SelectPiece(gameID, payload.Square)
		if selErr != nil {
			err = selErr
			break
		}
		return service.NewMessage(ws.MessageTypeSelection, ws.SelectionPayload{Square: payload.Square, Moves: moves}), true

	case ws.MessageTypeMove:
		var payload ws.MovePayload
		if err = json.Unmarshal(msg.Payload, &payload); err != nil {
			break
		}
		_, err = wsc.gameService.MakeMove(gameID, payload.From, payload.To)

	case ws.MessageTypeRelease:
		var payload ws.ReleasePayload
		if err = json.Unmarshal(msg.Payload, &payload); err != nil {
			break
		}
		_, err = wsc.gameService.ReleasePiece(gameID, payload.HeldFrom, payload.X, payload.Y)

	case ws.MessageTypeReset:
		_, err = wsc.gameService.ResetGame(gameID)

	default:
		err = fmt.Errorf("unknown message type: %s", msg.Type)
	}

	if err == nil {
		return ws.Message{}, false
	}
	if errors.Is(err, service.ErrIllegalMove) || errors.Is(err, service.ErrGameOver) || errors.Is(err, service.ErrInvalidSquare) {
		return service.NewMessage(ws.MessageTypeRejected, ws.ErrorPayload{Error: err.Error()}), true
	}
	log.Debugf("game %s: %s message: %v", gameID, msg.Type, err)
	return service.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()}), true
}

func (wsc *WebSocketController) reply(gameID, connID string, msg ws.Message) {
	if err := wsc.gameService.Send(gameID, connID, msg); err != nil {
		log.Debugf("game %s: write error: %v", gameID, err)
	}
}

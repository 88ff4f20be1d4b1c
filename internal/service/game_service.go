package service

import (
	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/storage"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
)

type GameService struct {
	gameManager  *GameManager
	squarePixels int
}

func NewGameService(gameManager *GameManager, squarePixels int) *GameService {
	return &GameService{
		gameManager:  gameManager,
		squarePixels: squarePixels,
	}
}

func (gs *GameService) CreateGame() string {
	return gs.gameManager.CreateGame()
}

func (gs *GameService) RemoveGame(gameID string) error {
	return gs.gameManager.RemoveGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) SelectPiece(gameID string, square int) ([]model.Move, error) {
	return gs.gameManager.SelectPiece(gameID, square)
}

func (gs *GameService) MakeMove(gameID string, from, to int) (model.GameState, error) {
	return gs.gameManager.MakeMove(gameID, from, to)
}

// ReleasePiece turns "piece held from heldFrom, released at pixel (x, y)"
// into a move onto the square under the pointer.
func (gs *GameService) ReleasePiece(gameID string, heldFrom, x, y int) (model.GameState, error) {
	return gs.gameManager.MakeMove(gameID, heldFrom, model.SquareAtPixel(x, y, gs.squarePixels))
}

func (gs *GameService) ResetGame(gameID string) (model.GameState, error) {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) Stats() (storage.Stats, error) {
	return gs.gameManager.Stats()
}

func (gs *GameService) RegisterConnection(gameID string, conn Conn) (string, error) {
	return gs.gameManager.RegisterConnection(gameID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, connID string) {
	gs.gameManager.UnregisterConnection(gameID, connID)
}

func (gs *GameService) Send(gameID, connID string, msg ws.Message) error {
	return gs.gameManager.Send(gameID, connID, msg)
}

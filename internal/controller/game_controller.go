package controller

import (
	"errors"

	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID := gc.gameService.CreateGame()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// SelectPiece lists the legal moves of the piece on :square. Empty squares
// and pieces of the side not to move get an empty list.
func (gc *GameController) SelectPiece(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)
	square, err := c.ParamsInt("square")
	if err != nil {
		return errorResponse(c, service.ErrInvalidSquare)
	}

	moves, err := gc.gameService.SelectPiece(gameID, square)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(ws.SelectionPayload{Square: square, Moves: moves})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)

	var move ws.MovePayload
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	gameState, err := gc.gameService.MakeMove(gameID, move.From, move.To)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)

	gameState, err := gc.gameService.ResetGame(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// RemoveGame ends a session and frees it. Attached renderers stop receiving state.
func (gc *GameController) RemoveGame(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)

	if err := gc.gameService.RemoveGame(gameID); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game removed",
		"game_id": gameID,
	})
}

func (gc *GameController) Stats(c *fiber.Ctx) error {
	stats, err := gc.gameService.Stats()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(stats)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidSquare):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrIllegalMove), errors.Is(err, service.ErrGameOver):
		status = fiber.StatusUnprocessableEntity
	default:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"error": "internal error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

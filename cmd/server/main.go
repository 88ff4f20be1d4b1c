package main

import (
	"os"
	"strings"

	"github.com/benbeisheim/hotseat-chess/internal/config"
	"github.com/benbeisheim/hotseat-chess/internal/controller"
	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("open results store: %v", err)
	}
	defer store.Close()

	app := newApp(cfg, store)

	if err := app.Listen(cfg.Addr); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}

func newApp(cfg config.Config, store *storage.Store) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	// Initialize services
	gameManager := service.NewGameManager(store)
	gameService := service.NewGameService(gameManager, cfg.SquarePixels)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Get("/ws/game/:gameId", middleware.RequireGameID(), middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         strings.Split(cfg.Origins, ","),
	}))

	// Set up REST routes
	api := app.Group("/api")
	api.Get("/stats", gameController.Stats)

	// Game routes
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", middleware.RequireGameID(), gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves/:square", middleware.RequireGameID(), gameController.SelectPiece)
	gameRoutes.Post("/:gameId/move", middleware.RequireGameID(), gameController.MakeMove)
	gameRoutes.Post("/:gameId/reset", middleware.RequireGameID(), gameController.ResetGame)
	gameRoutes.Delete("/:gameId", middleware.RequireGameID(), gameController.RemoveGame)

	return app
}

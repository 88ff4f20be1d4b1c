package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestRequireGameID(t *testing.T) {
	app := fiber.New()
	app.Get("/game/:gameId", RequireGameID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("gameID").(string))
	})

	id := uuid.NewString()
	tests := []struct {
		name string
		path string
		want int
	}{
		{"uuid", "/game/" + id, fiber.StatusOK},
		{"not a uuid", "/game/create", fiber.StatusBadRequest},
		{"truncated uuid", "/game/" + id[:20], fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d; want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestWebSocketUpgrade(t *testing.T) {
	app := fiber.New()
	app.Get("/ws", WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusSwitchingProtocols)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("plain GET status = %d; want 426", resp.StatusCode)
	}
}

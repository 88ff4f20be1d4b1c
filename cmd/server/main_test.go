package main

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/benbeisheim/hotseat-chess/internal/config"
	"github.com/benbeisheim/hotseat-chess/internal/storage"
	"github.com/gofiber/fiber/v2"
)

func TestRoutes(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("storage.Open error: %v", err)
	}
	defer store.Close()
	app := newApp(config.Default(), store)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/game/create", nil))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d; want 201", resp.StatusCode)
	}
	var created struct {
		GameID string `json:"game_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create body: %v", err)
	}

	tests := []struct {
		method, path string
		want         int
	}{
		{"GET", "/api/game/" + created.GameID, fiber.StatusOK},
		{"GET", "/api/game/" + created.GameID + "/moves/52", fiber.StatusOK},
		{"POST", "/api/game/" + created.GameID + "/reset", fiber.StatusOK},
		{"GET", "/api/game/nope", fiber.StatusBadRequest},
		{"GET", "/api/stats", fiber.StatusOK},
		{"GET", "/ws/game/" + created.GameID, fiber.StatusUpgradeRequired},
		{"DELETE", "/api/game/" + created.GameID, fiber.StatusOK},
		{"GET", "/api/game/" + created.GameID, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s status = %d; want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}

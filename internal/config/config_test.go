package config

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values stand in for unset ones where the default is also empty.
	t.Setenv("CHESS_ADDR", "127.0.0.1:3000")
	t.Setenv("CHESS_ORIGINS", "http://localhost:5173")
	t.Setenv("CHESS_DATA_DIR", "")
	t.Setenv("CHESS_LOG_LEVEL", "")
	t.Setenv("CHESS_SQUARE_PIXELS", "120")

	got, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) error: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CHESS_ADDR", ":4000")
	t.Setenv("CHESS_LOG_LEVEL", "warn")

	got, err := Load([]string{"-addr", ":5000", "-data-dir", "/tmp/results", "-square-pixels", "64"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Addr != ":5000" {
		t.Errorf("Addr = %q; want :5000", got.Addr)
	}
	if got.LogLevel != log.LevelWarn {
		t.Errorf("LogLevel = %v; want warn from environment", got.LogLevel)
	}
	if got.DataDir != "/tmp/results" {
		t.Errorf("DataDir = %q; want /tmp/results", got.DataDir)
	}
	if got.SquarePixels != 64 {
		t.Errorf("SquarePixels = %d; want 64", got.SquarePixels)
	}
}

func TestLoadSquarePixelsFromEnvironment(t *testing.T) {
	t.Setenv("CHESS_SQUARE_PIXELS", "80")

	got, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) error: %v", err)
	}
	if got.SquarePixels != 80 {
		t.Errorf("SquarePixels = %d; want 80 from environment", got.SquarePixels)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-colour", "white"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"zero squares", []string{"-square-pixels", "0"}},
		{"non numeric squares", []string{"-square-pixels", "big"}},
		{"empty addr", []string{"-addr", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load(%v) error = %v; want ErrInvalidConfig", tt.args, err)
			}
		})
	}
}

package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRendererMessages(t *testing.T) {
	raw := `{"type":"release","payload":{"heldFrom":52,"x":500,"y":430}}`

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("Unmarshal message error: %v", err)
	}
	if msg.Type != MessageTypeRelease {
		t.Fatalf("Type = %q; want %q", msg.Type, MessageTypeRelease)
	}

	var got ReleasePayload
	if err := json.Unmarshal(msg.Payload, &got); err != nil {
		t.Fatalf("Unmarshal payload error: %v", err)
	}
	if diff := cmp.Diff(ReleasePayload{HeldFrom: 52, X: 500, Y: 430}, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

package mq

import (
	"context"
	"encoding/json"
	"log"

	"cradle/rdx"
)

// Event is a lightweight broadcast about a domain change.
type Event struct {
	Name     string `json:"name"`
	EntityID string `json:"entity_id"`
	UserID   string `json:"user_id,omitempty"`
}

const channel = "shop-events"

// Emit publishes an event to the Redis event channel. Emission is
// best-effort: a failed publish is logged and never fails the caller.
func Emit(ctx context.Context, eventName string, ev Event) {
	ev.Name = eventName

	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

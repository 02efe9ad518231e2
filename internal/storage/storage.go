package storage

import (
	"context"
	"time"
)

// Delivery is a verified webhook delivery as persisted by the receiver.
type Delivery struct {
	DeliveryID string         `json:"delivery_id"`
	Event      string         `json:"event"`
	Timestamp  string         `json:"timestamp"`
	Data       map[string]any `json:"data"`
	ReceivedAt time.Time      `json:"received_at"`
}

type DeliveryStore interface {
	// Record persists a verified delivery, reporting whether it was newly
	// recorded. False means the delivery id was already seen and the
	// delivery should be treated as a duplicate redelivery.
	Record(ctx context.Context, d Delivery) (bool, error)

	// Recent returns up to limit deliveries, newest first.
	Recent(ctx context.Context, limit int) ([]Delivery, error)

	Close() error
}

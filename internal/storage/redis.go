package storage

import (
	"context"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	deliverySeenPrefix = "deliveries:seen:"
	deliveryRecentKey  = "deliveries:recent"

	// seenTTL comfortably exceeds the platform's redelivery horizon.
	seenTTL = 24 * time.Hour

	recentMax = 1000
)

var _ DeliveryStore = (*RedisDeliveryStore)(nil)

type RedisDeliveryStore struct {
	client *redis.Client
}

func NewRedisDeliveryStore(client *redis.Client) *RedisDeliveryStore {
	return &RedisDeliveryStore{client: client}
}

func (s *RedisDeliveryStore) Record(ctx context.Context, d Delivery) (bool, error) {
	fresh, err := s.client.SetNX(ctx, deliverySeenPrefix+d.DeliveryID, 1, seenTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark delivery seen: %w", err)
	}
	if !fresh {
		return false, nil
	}

	data, err := go_json.Marshal(d)
	if err != nil {
		return false, fmt.Errorf("failed to marshal delivery: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, deliveryRecentKey, string(data))
	pipe.LTrim(ctx, deliveryRecentKey, 0, recentMax-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record delivery: %w", err)
	}
	return true, nil
}

func (s *RedisDeliveryStore) Recent(ctx context.Context, limit int) ([]Delivery, error) {
	results, err := s.client.LRange(ctx, deliveryRecentKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent deliveries: %w", err)
	}

	deliveries := make([]Delivery, 0, len(results))
	for _, data := range results {
		var d Delivery
		if err := go_json.Unmarshal([]byte(data), &d); err != nil {
			continue
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func (s *RedisDeliveryStore) Close() error {
	return s.client.Close()
}

package storage

import (
	"context"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/optouthub/optouthub-go/internal/migrations/postgres"
)

var _ DeliveryStore = (*PostgresDeliveryStore)(nil)

type PostgresDeliveryStore struct {
	pool *pgxpool.Pool
}

func NewPostgresDeliveryStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresDeliveryStore, error) {
	if err := postgres.Apply(ctx, pool); err != nil {
		return nil, fmt.Errorf("failed to migrate deliveries schema: %w", err)
	}
	return &PostgresDeliveryStore{pool: pool}, nil
}

func (s *PostgresDeliveryStore) Record(ctx context.Context, d Delivery) (bool, error) {
	data, err := go_json.Marshal(d.Data)
	if err != nil {
		return false, fmt.Errorf("failed to marshal delivery data: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`INSERT INTO webhook_deliveries (delivery_id, event, timestamp, data, received_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (delivery_id) DO NOTHING`,
		d.DeliveryID, d.Event, d.Timestamp, data, d.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert delivery: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresDeliveryStore) Recent(ctx context.Context, limit int) ([]Delivery, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT delivery_id, event, timestamp, data, received_at
		 FROM webhook_deliveries
		 ORDER BY received_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []Delivery
	for rows.Next() {
		var (
			d    Delivery
			data []byte
		)
		if err := rows.Scan(&d.DeliveryID, &d.Event, &d.Timestamp, &data, &d.ReceivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		if err := go_json.Unmarshal(data, &d.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal delivery data: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func (s *PostgresDeliveryStore) Close() error {
	s.pool.Close()
	return nil
}

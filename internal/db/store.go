// Package db persists completed turns to Postgres. The archive is optional;
// the engine runs fully in memory without it.
package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"parley/internal/domain"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS turns (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			text TEXT NOT NULL,
			intent TEXT NOT NULL,
			entities JSONB NOT NULL DEFAULT '{}'::jsonb,
			sentiment JSONB NOT NULL DEFAULT '{}'::jsonb,
			reply TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_turns_user_created ON turns(user_id, created_at);`,
	}

	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) SaveTurn(ctx context.Context, rec domain.TurnRecord) error {
	entities, err := json.Marshal(rec.Entities)
	if err != nil {
		return err
	}
	sentiment, err := json.Marshal(rec.Sentiment)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO turns (id, user_id, text, intent, entities, sentiment, reply, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, rec.ID, rec.UserID, rec.Text, rec.Intent, entities, sentiment, rec.Reply, rec.Confidence, rec.CreatedAt)
	return err
}

// RecentTurns returns the user's newest turns, most recent first.
func (s *Store) RecentTurns(ctx context.Context, userID string, limit int) ([]domain.TurnRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, text, intent, entities, sentiment, reply, confidence, created_at
		FROM turns
		WHERE user_id=$1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TurnRecord
	for rows.Next() {
		var rec domain.TurnRecord
		var entities, sentiment []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Text, &rec.Intent, &entities, &sentiment, &rec.Reply, &rec.Confidence, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(entities, &rec.Entities); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sentiment, &rec.Sentiment); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	"github.com/paylite/payroll-backend-go/internal/pkg/database"
)

// snapshotRepository stores the whole aggregate as a single jsonb blob
// row. The store never inspects the blob; all structure lives in the
// domain types.
type snapshotRepository struct {
	db  database.Querier
	key string
}

func NewSnapshotRepository(ctx context.Context, db *database.DB) (state.SnapshotStore, error) {
	r := &snapshotRepository{db: db, key: "payroll"}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *snapshotRepository) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS app_snapshots (
			name       TEXT PRIMARY KEY,
			blob       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure snapshot schema: %w", err)
	}
	return nil
}

func (r *snapshotRepository) Load(ctx context.Context) (state.AppState, error) {
	query := `SELECT blob FROM app_snapshots WHERE name = $1`

	var blob []byte
	err := r.db.QueryRow(ctx, query, r.key).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return state.AppState{}, state.ErrSnapshotNotFound
		}
		return state.AppState{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var st state.AppState
	if err := json.Unmarshal(blob, &st); err != nil {
		return state.AppState{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return st, nil
}

func (r *snapshotRepository) Save(ctx context.Context, st state.AppState) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO app_snapshots (name, blob)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET
			blob = EXCLUDED.blob,
			updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, r.key, blob); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

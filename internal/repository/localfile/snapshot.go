package localfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paylite/payroll-backend-go/internal/domain/state"
)

// snapshotRepository persists the aggregate as one JSON file under the
// configured base path. Writes go through a temp file and rename so a
// crash mid-save never corrupts the last good snapshot.
type snapshotRepository struct {
	path string
}

func NewSnapshotRepository(basePath string) (state.SnapshotStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &snapshotRepository{path: filepath.Join(basePath, "payroll.json")}, nil
}

func (r *snapshotRepository) Load(_ context.Context) (state.AppState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state.AppState{}, state.ErrSnapshotNotFound
		}
		return state.AppState{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var st state.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return state.AppState{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return st, nil
}

func (r *snapshotRepository) Save(_ context.Context, st state.AppState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

package state

import "context"

// SnapshotStore persists the aggregate as one opaque blob. Load returns
// ErrSnapshotNotFound when nothing has ever been saved.
type SnapshotStore interface {
	Load(ctx context.Context) (AppState, error)
	Save(ctx context.Context, st AppState) error
}

// Package appstate owns the in-process application aggregate. The
// engine is single-writer by design: every mutation goes through one
// Manager, which serializes access and persists a snapshot after each
// successful write.
package appstate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/paylite/payroll-backend-go/internal/domain/state"
)

type Manager struct {
	mu    sync.Mutex
	state state.AppState
	store state.SnapshotStore
}

func NewManager(store state.SnapshotStore) *Manager {
	return &Manager{store: store}
}

// Load pulls the last snapshot into memory. An absent snapshot starts a
// fresh aggregate; any other store failure is fatal to startup.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, state.ErrSnapshotNotFound) {
			m.state = state.AppState{}
			return nil
		}
		return fmt.Errorf("failed to load state snapshot: %w", err)
	}
	m.state = st
	return nil
}

// Read runs fn against the aggregate under the lock. fn must not retain
// pointers into the aggregate past its return.
func (m *Manager) Read(fn func(st *state.AppState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(&m.state)
}

// Write runs fn against the aggregate under the lock and saves a
// snapshot afterwards. When fn errors, the save is skipped; fn is
// responsible for leaving the aggregate untouched on failure (stage
// into copies, commit last).
func (m *Manager) Write(ctx context.Context, fn func(st *state.AppState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := fn(&m.state); err != nil {
		return err
	}
	if err := m.store.Save(ctx, m.state); err != nil {
		return fmt.Errorf("failed to save state snapshot: %w", err)
	}
	return nil
}

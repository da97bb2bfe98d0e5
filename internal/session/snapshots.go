package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

// SnapshotStore persists the full application state under one well-known
// key. Load falls back to the default empty state when nothing is stored or
// the stored payload does not parse; malformed data is never an error.
type SnapshotStore interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}

func decodeSnapshot(ctx context.Context, payload []byte, logg *logger.Logger) State {
	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		if logg != nil {
			logg.Warn(ctx, "discarding malformed state snapshot")
		}
		return DefaultState()
	}
	return state.normalize()
}

// MemorySnapshots keeps the snapshot in process memory. Used by tests and
// the ephemeral store backend.
type MemorySnapshots struct {
	mu      sync.Mutex
	payload []byte
	saveErr error
}

// NewMemorySnapshots returns an empty in-memory snapshot store.
func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{}
}

// FailSaves makes every subsequent Save return err. Test hook for the
// best-effort durability path.
func (m *MemorySnapshots) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *MemorySnapshots) Load(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return DefaultState(), nil
	}
	return decodeSnapshot(ctx, m.payload, nil), nil
}

func (m *MemorySnapshots) Save(_ context.Context, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.payload = payload
	return nil
}

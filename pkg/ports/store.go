package ports

import (
	"context"

	"github.com/aretw0/navstack/pkg/domain"
)

// SnapshotStore defines the interface for persisting exported navigation stacks.
// This is the save-state boundary that lets a stack survive process death.
type SnapshotStore interface {
	// Save persists the snapshot under key, replacing any previous one.
	Save(ctx context.Context, key string, snapshot *domain.Snapshot) error

	// Load retrieves the snapshot for key.
	// Returns domain.ErrSnapshotNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Snapshot, error)

	// Delete removes the snapshot for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the keys of all stored snapshots.
	List(ctx context.Context) ([]string, error)
}

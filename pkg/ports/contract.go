package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore
// implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	newSnapshot := func() *domain.Snapshot {
		return &domain.Snapshot{
			ContainerID: "container-1",
			Entries: []domain.SnapshotEntry{
				{Kind: "color", Args: map[string]any{"level": 10}},
				{Kind: "number", Args: map[string]any{"value": 2}, Tag: "second"},
				{Kind: "color", Tag: "third"},
			},
			SavedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		snap := newSnapshot()

		err := store.Save(ctx, key, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, snap.ContainerID, loaded.ContainerID)
		require.Len(t, loaded.Entries, 3)

		// Order and tags must round-trip exactly.
		for i, e := range snap.Entries {
			assert.Equal(t, e.Kind, loaded.Entries[i].Kind)
			assert.Equal(t, e.Tag, loaded.Entries[i].Tag)
		}
		// JSON backends turn numbers into float64, so only check presence.
		assert.NotNil(t, loaded.Entries[0].Args["level"])
		assert.True(t, snap.SavedAt.Equal(loaded.SavedAt))
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		snap := newSnapshot()
		snap.Entries = snap.Entries[:1]
		require.NoError(t, store.Save(ctx, key, snap))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Len(t, loaded.Entries, 1)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, key, newSnapshot())
		require.NoError(t, err)

		err = store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Deleting a missing key should not fail")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		_ = store.Save(ctx, id1, newSnapshot())
		_ = store.Save(ctx, id2, newSnapshot())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}

package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSnapshotStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	snap := &domain.Snapshot{Entries: []domain.SnapshotEntry{{Kind: "color", Args: map[string]any{"level": 1}}}}
	require.NoError(t, store.Save(ctx, "k", snap))

	snap.Entries[0].Args["level"] = 99
	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Entries[0].Args["level"])

	loaded.Entries[0].Kind = "mutated"
	again, _ := store.Load(ctx, "k")
	assert.Equal(t, "color", again.Entries[0].Kind)
}

package demo_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/navstack/internal/adapters/file"
	"github.com/aretw0/navstack/internal/demo"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorScreen(t *testing.T) {
	grey := demo.NewColorScreen(0x10)
	assert.Equal(t, "Color #101010", grey.Name())

	assert.Equal(t, int32(255), demo.NewColorScreen(999).R)
	assert.Equal(t, int32(0), demo.NewColorScreen(-7).G)

	random := demo.NewColorScreen(demo.RandomLevel)
	assert.GreaterOrEqual(t, random.R, int32(0))
	assert.Less(t, random.R, int32(256))

	assert.NotNil(t, grey.Primitive())
	assert.Same(t, grey.Primitive(), grey.Primitive())
}

func TestFactory_RoundTripThroughJSON(t *testing.T) {
	screens := []domain.Restorable{
		demo.NewColorScreen(demo.RandomLevel),
		demo.NewNumberScreen(7),
	}

	for _, s := range screens {
		data, err := json.Marshal(s.Descriptor())
		require.NoError(t, err)
		var d domain.Descriptor
		require.NoError(t, json.Unmarshal(data, &d))

		rebuilt, err := demo.NewFactory().Create(d)
		require.NoError(t, err)
		assert.Equal(t, s.Name(), rebuilt.Name())
	}
}

func TestFactory_ThroughFileStore(t *testing.T) {
	ctx := context.Background()
	store := file.New(t.TempDir())

	n := demo.NewNumberScreen(3)
	d := n.Descriptor()
	snap := &domain.Snapshot{Entries: []domain.SnapshotEntry{{Kind: d.Kind, Args: d.Args, Tag: "three"}}}
	require.NoError(t, store.Save(ctx, "demo", snap))

	loaded, err := store.Load(ctx, "demo")
	require.NoError(t, err)
	e := loaded.Entries[0]
	rebuilt, err := demo.NewFactory().Create(domain.Descriptor{Kind: e.Kind, Args: e.Args})
	require.NoError(t, err)
	assert.Equal(t, "Number 3", rebuilt.Name())
}

func TestFactory_Errors(t *testing.T) {
	_, err := demo.NewFactory().Create(domain.Descriptor{Kind: "video"})
	assert.ErrorIs(t, err, domain.ErrUnknownScreenKind)

	_, err = demo.NewFactory().Create(domain.Descriptor{Kind: demo.KindNumber, Args: map[string]any{"value": "seven"}})
	assert.Error(t, err)
}

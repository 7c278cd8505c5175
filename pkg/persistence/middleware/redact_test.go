package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/persistence/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactMiddleware_Masking(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	mw, err := middleware.NewRedactMiddleware([]string{"password", "ssn"})
	require.NoError(t, err)
	view := mw(underlying)

	snap := &domain.Snapshot{
		ContainerID: "c1",
		Entries: []domain.SnapshotEntry{{
			Kind: "profile",
			Args: map[string]any{
				"username":      "jdoe",
				"user_password": "secret123",
				"details": map[string]any{
					"address":    "123 St",
					"ssn_number": "999-99-9999",
				},
			},
		}},
	}
	require.NoError(t, view.Save(ctx, "k", snap))

	stored, err := underlying.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "secret123", stored.Entries[0].Args["user_password"], "saved data stays restorable")

	masked, err := view.Load(ctx, "k")
	require.NoError(t, err)
	args := masked.Entries[0].Args
	assert.Equal(t, "jdoe", args["username"])
	assert.Equal(t, middleware.Mask, args["user_password"])
	details := args["details"].(map[string]any)
	assert.Equal(t, middleware.Mask, details["ssn_number"])
	assert.Equal(t, "123 St", details["address"])

	again, err := underlying.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "secret123", again.Entries[0].Args["user_password"], "masking never writes through")
}

func TestRedactMiddleware_BadPattern(t *testing.T) {
	_, err := middleware.NewRedactMiddleware([]string{"("})
	assert.Error(t, err)
}

func TestChain_Order(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	redact, err := middleware.NewRedactMiddleware([]string{"token"})
	require.NoError(t, err)
	encrypt := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})

	// redact outermost: it sees decrypted entries.
	store := middleware.Chain(underlying, redact, encrypt)
	require.NoError(t, store.Save(ctx, "k", sampleSnapshot()))

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, middleware.Mask, loaded.Entries[1].Args["token"])
}

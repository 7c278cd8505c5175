package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/navstack/internal/adapters/file"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSnapshotStoreContract(t, store)
}

func TestFileStore_Defaults(t *testing.T) {
	store := file.New("")
	assert.Equal(t, filepath.Join(".navstack", "snapshots"), store.BasePath)
}

func TestFileStore_RejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	store := file.New(t.TempDir())

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, store.Save(ctx, key, &domain.Snapshot{}), "key %q", key)
	}
}

func TestFileStore_ListSkipsTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.New(dir)

	require.NoError(t, store.Save(ctx, "main", &domain.Snapshot{}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-main-123.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, keys)
}

func TestFileStore_MissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "nope"))
	keys, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

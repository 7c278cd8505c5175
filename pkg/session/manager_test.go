package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/aretw0/navstack/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(memory.NewStore())

	snap := &domain.Snapshot{
		ContainerID: "c1",
		Entries:     []domain.SnapshotEntry{{Kind: "color", Args: map[string]any{"level": 3}}},
	}
	require.NoError(t, mgr.Save(ctx, "main", snap))

	loaded, err := mgr.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, "c1", loaded.ContainerID)

	keys, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, keys)

	require.NoError(t, mgr.Delete(ctx, "main"))
	_, ok, err := mgr.LoadIfExists(ctx, "main")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_SerializesPerKey(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	var inside, overlap int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := mgr.WithLock(ctx, "shared", func(ctx context.Context) error {
				if atomic.AddInt32(&inside, 1) > 1 {
					atomic.StoreInt32(&overlap, 1)
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Zero(t, atomic.LoadInt32(&overlap), "critical sections overlapped")
}

type fakeLocker struct {
	mu      sync.Mutex
	locked  []string
	ttl     time.Duration
	failErr error
	release int
}

func (f *fakeLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.mu.Lock()
	f.locked = append(f.locked, key)
	f.ttl = ttl
	f.mu.Unlock()
	return func(ctx context.Context) error {
		f.mu.Lock()
		f.release++
		f.mu.Unlock()
		return nil
	}, nil
}

func TestManager_DistributedLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquires And Releases", func(t *testing.T) {
		locker := &fakeLocker{}
		mgr := session.NewManager(memory.NewStore(),
			session.WithLocker(locker),
			session.WithLockTTL(5*time.Second),
		)
		require.NoError(t, mgr.Save(ctx, "k", &domain.Snapshot{}))
		assert.Equal(t, []string{"k"}, locker.locked)
		assert.Equal(t, 5*time.Second, locker.ttl)
		assert.Equal(t, 1, locker.release)
	})

	t.Run("Lock Failure", func(t *testing.T) {
		boom := errors.New("boom")
		mgr := session.NewManager(memory.NewStore(), session.WithLocker(&fakeLocker{failErr: boom}))
		err := mgr.Save(ctx, "k", &domain.Snapshot{})
		assert.ErrorIs(t, err, boom)
	})
}

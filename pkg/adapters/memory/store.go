package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/navstack/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Snapshot),
	}
}

// Save keeps a copy of snap under key.
func (s *Store) Save(ctx context.Context, key string, snap *domain.Snapshot) error {
	copied := cloneSnapshot(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load returns a copy of the snapshot stored under key.
func (s *Store) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return cloneSnapshot(snap), nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// cloneSnapshot copies the entries and their args so callers can't mutate
// stored snapshots through shared pointers.
func cloneSnapshot(snap *domain.Snapshot) *domain.Snapshot {
	out := *snap
	out.Entries = make([]domain.SnapshotEntry, len(snap.Entries))
	for i, e := range snap.Entries {
		out.Entries[i] = e
		if e.Args != nil {
			out.Entries[i].Args = make(map[string]any, len(e.Args))
			for k, v := range e.Args {
				out.Entries[i].Args[k] = v
			}
		}
	}
	return &out
}

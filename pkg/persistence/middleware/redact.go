package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
)

// Mask replaces redacted argument values.
const Mask = "***"

type redactMiddleware struct {
	next     ports.SnapshotStore
	patterns []*regexp.Regexp
}

// NewRedactMiddleware creates a read-side middleware that masks screen
// arguments whose keys match any of the patterns. Saved data is untouched,
// so it suits inspection surfaces and not stores a controller restores from.
func NewRedactMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		patterns[i] = re
	}
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &redactMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *redactMiddleware) Save(ctx context.Context, key string, snap *domain.Snapshot) error {
	return m.next.Save(ctx, key, snap)
}

func (m *redactMiddleware) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	snap, err := m.next.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	// Stores may hand out shared maps; never mask in place.
	masked := *snap
	masked.Entries = make([]domain.SnapshotEntry, len(snap.Entries))
	for i, e := range snap.Entries {
		e.Args = deepCopyMap(e.Args)
		maskMap(e.Args, m.patterns)
		masked.Entries[i] = e
	}
	return &masked, nil
}

func (m *redactMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if subMap, ok := v.(map[string]any); ok {
			out[k] = deepCopyMap(subMap)
		} else {
			out[k] = v
		}
	}
	return out
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		for _, p := range patterns {
			if p.MatchString(k) {
				m[k] = Mask
				break
			}
		}

		if subMap, ok := v.(map[string]any); ok && m[k] != Mask {
			maskMap(subMap, patterns)
		}
	}
}

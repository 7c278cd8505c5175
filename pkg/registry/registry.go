package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/navstack/pkg/domain"
)

// Constructor builds a screen from descriptor arguments.
type Constructor func(args map[string]any) (domain.Screen, error)

// Registry maps screen kinds to constructors. It implements ports.ScreenFactory.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Constructor
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Constructor),
	}
}

// Register adds a constructor for kind.
// If the kind is already registered, it is overwritten.
func (r *Registry) Register(kind string, fn Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = fn
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Create looks up the descriptor's kind and builds the screen.
// Returns domain.ErrUnknownScreenKind if the kind is not registered.
func (r *Registry) Create(d domain.Descriptor) (domain.Screen, error) {
	r.mu.RLock()
	fn, ok := r.kinds[d.Kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%q: %w", d.Kind, domain.ErrUnknownScreenKind)
	}

	s, err := fn(d.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q screen: %w", d.Kind, err)
	}
	return s, nil
}

package navstack

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/navstack/internal/logging"
	"github.com/aretw0/navstack/internal/runtime"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/aretw0/navstack/pkg/session"
)

// Builder assembles a Controller: its initial chain of screens, the duplicate
// tag policy and the container it shows screens in.
// A Builder can be reused; every Build returns an independent controller.
type Builder struct {
	chain               []domain.Entry
	ignoreDuplicateTags bool

	container   ports.Container
	host        ports.Host
	key         string
	containerID string

	logger   *slog.Logger
	listener domain.TransitionListener
	hooks    domain.Hooks

	sessions *session.Manager
	factory  ports.ScreenFactory
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddScreen appends screen to the initial chain. Nil screens are ignored.
func (b *Builder) AddScreen(screen domain.Screen, tag string) *Builder {
	if screen != nil {
		b.chain = append(b.chain, domain.Entry{Screen: screen, Tag: tag})
	}
	return b
}

// AddScreens appends every entry to the initial chain, in order.
func (b *Builder) AddScreens(entries ...domain.Entry) *Builder {
	for _, e := range entries {
		b.AddScreen(e.Screen, e.Tag)
	}
	return b
}

// IgnoreDuplicateTags makes forwards and replaces with a tag already on the
// stack fail instead of pushing a second entry.
func (b *Builder) IgnoreDuplicateTags(ignore bool) *Builder {
	b.ignoreDuplicateTags = ignore
	return b
}

// WithContainer sets the container screens are shown in.
func (b *Builder) WithContainer(c ports.Container) *Builder {
	b.container = c
	b.host = nil
	return b
}

// Show attaches the built controller to host under key.
// The key is also used to persist the controller's state. An empty key makes
// Build fail with ErrEmptyKey; without Show the persistence key is the
// container id.
func (b *Builder) Show(host ports.Host, key string) *Builder {
	b.container = host
	b.host = host
	b.key = key
	return b
}

// WithContainerID fixes the container id instead of generating one.
func (b *Builder) WithContainerID(id string) *Builder {
	b.containerID = id
	return b
}

// WithLogger sets the structured logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithListener sets the transition listener.
func (b *Builder) WithListener(l domain.TransitionListener) *Builder {
	b.listener = l
	return b
}

// WithHooks registers observability hooks.
func (b *Builder) WithHooks(hooks domain.Hooks) *Builder {
	b.hooks = hooks
	return b
}

// WithSessions enables SaveState and RestoreState.
func (b *Builder) WithSessions(manager *session.Manager, factory ports.ScreenFactory) *Builder {
	b.sessions = manager
	b.factory = factory
	return b
}

// Build creates a suspended controller. The initial chain is copied into its
// transaction log and shown on the first resume.
func (b *Builder) Build() (*Controller, error) {
	if b.container == nil {
		return nil, domain.ErrNoContainer
	}
	if b.host != nil && b.key == "" {
		return nil, ErrEmptyKey
	}

	logger := b.logger
	if logger == nil {
		logger = logging.NewNop()
	}

	opts := []runtime.Option{
		runtime.WithLogger(logger),
		runtime.WithHooks(b.hooks),
		runtime.WithListener(b.listener),
		runtime.WithIgnoreDuplicateTags(b.ignoreDuplicateTags),
	}
	if b.containerID != "" {
		opts = append(opts, runtime.WithContainerID(b.containerID))
	}
	rc := runtime.NewController(b.container, opts...)

	key := b.key
	if b.host != nil {
		if err := b.host.Attach(key, rc.ContainerID()); err != nil {
			return nil, fmt.Errorf("attach controller: %w", err)
		}
	}
	if key == "" {
		key = rc.ContainerID()
	}

	chain := make([]domain.Entry, len(b.chain))
	copy(chain, b.chain)
	rc.GoForwardChain(chain...)

	return &Controller{
		Controller: rc,
		key:        key,
		sessions:   b.sessions,
		factory:    b.factory,
		logger:     logger.With("key", key),
	}, nil
}

package memory

import (
	"fmt"
	"sync"

	"github.com/aretw0/navstack/pkg/domain"
)

// Call is one Show or Detach received by a Container.
type Call struct {
	Op          string // "show" or "detach"
	ContainerID string
	Screen      domain.Screen
}

func (c Call) String() string {
	return fmt.Sprintf("%s %s %s", c.Op, c.ContainerID, c.Screen.Name())
}

// Container is a headless ports.Host.
// It tracks the visible screen of every container and records each call, which
// makes it the host of choice for tests and non-interactive runs.
// Safe for concurrent use.
type Container struct {
	mu      sync.Mutex
	keys    map[string]string
	visible map[string]domain.Screen
	calls   []Call
}

// NewContainer creates an empty headless host.
func NewContainer() *Container {
	return &Container{
		keys:    make(map[string]string),
		visible: make(map[string]domain.Screen),
	}
}

// Attach registers containerID under key.
func (c *Container) Attach(key, containerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.keys[key]; ok {
		return fmt.Errorf("attach %q: %w", key, domain.ErrKeyInUse)
	}
	c.keys[key] = containerID
	return nil
}

// Show makes screen the visible content of the container.
func (c *Container) Show(containerID string, screen domain.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visible[containerID] = screen
	c.calls = append(c.calls, Call{Op: "show", ContainerID: containerID, Screen: screen})
}

// Detach removes screen from the container. The visible screen is only
// cleared when it is the one being detached.
func (c *Container) Detach(containerID string, screen domain.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.visible[containerID] == screen {
		delete(c.visible, containerID)
	}
	c.calls = append(c.calls, Call{Op: "detach", ContainerID: containerID, Screen: screen})
}

// Visible returns the screen shown in containerID, or nil.
func (c *Container) Visible(containerID string) domain.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible[containerID]
}

// ContainerID returns the container attached under key.
func (c *Container) ContainerID(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.keys[key]
	return id, ok
}

// Calls returns a copy of every call received so far.
func (c *Container) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

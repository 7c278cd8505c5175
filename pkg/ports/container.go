package ports

import "github.com/aretw0/navstack/pkg/domain"

// Container is the host capability the controller drives.
// Calls are synchronous and treated as infallible: host-side failures are the
// host's business.
type Container interface {
	// Show displays screen inside the container, detaching whatever was shown before.
	Show(containerID string, screen domain.Screen)

	// Detach removes screen from the container without showing a replacement.
	Detach(containerID string, screen domain.Screen)
}

// Host is a Container that controllers are attached to under an identifying key.
// Two controllers must never share a key or a container id.
type Host interface {
	Container

	// Attach registers the container id under key.
	// Returns domain.ErrKeyInUse if the key is already attached.
	Attach(key string, containerID string) error
}

// ScreenFactory rebuilds screens from their descriptors.
type ScreenFactory interface {
	// Create returns a new screen for the descriptor.
	// Returns domain.ErrUnknownScreenKind for kinds it does not know.
	Create(d domain.Descriptor) (domain.Screen, error)
}

// ScreenFactoryFunc adapts a function to the ScreenFactory interface.
type ScreenFactoryFunc func(d domain.Descriptor) (domain.Screen, error)

// Create calls f(d).
func (f ScreenFactoryFunc) Create(d domain.Descriptor) (domain.Screen, error) {
	return f(d)
}

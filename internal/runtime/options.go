package runtime

import (
	"log/slog"

	"github.com/aretw0/navstack/pkg/domain"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithListener registers the transition listener.
func WithListener(listener domain.TransitionListener) Option {
	return func(c *Controller) {
		c.OnTransition(listener)
	}
}

// WithIgnoreDuplicateTags rejects forwards and replaces whose tag is already on the stack.
func WithIgnoreDuplicateTags(ignore bool) Option {
	return func(c *Controller) {
		c.ignoreDuplicateTags = ignore
	}
}

// WithContainerID overrides the generated container id.
func WithContainerID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.containerID = id
		}
	}
}

package navstack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/navstack/internal/runtime"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/aretw0/navstack/pkg/session"
)

// Screen and Entry are re-exported for hosts that only import the root package.
type (
	Screen = domain.Screen
	Entry  = domain.Entry
)

// ErrNoSessions is returned by SaveState and RestoreState when the controller
// was built without WithSessions.
var ErrNoSessions = errors.New("no session manager configured")

// ErrEmptyKey is returned by Build when Show was given an empty key.
var ErrEmptyKey = errors.New("host key must not be empty")

// Controller is the navigation controller handed to hosts.
// It embeds the runtime state machine and adds persistence through a
// session.Manager.
type Controller struct {
	*runtime.Controller

	key      string
	sessions *session.Manager
	factory  ports.ScreenFactory
	logger   *slog.Logger
}

// Key identifies the controller in its host and in the snapshot store.
// It is the key given to Builder.Show, or the container id otherwise.
func (c *Controller) Key() string {
	return c.key
}

// SaveState snapshots the stack and persists it under Key.
func (c *Controller) SaveState(ctx context.Context) error {
	if c.sessions == nil {
		return ErrNoSessions
	}
	snap, err := c.Snapshot()
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := c.sessions.Save(ctx, c.key, &snap); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	c.logger.Debug("state saved", "key", c.key, "depth", snap.Depth())
	return nil
}

// RestoreState loads the snapshot stored under Key and schedules it for the
// next resume. It reports false when nothing was stored. The controller must be
// suspended.
func (c *Controller) RestoreState(ctx context.Context) (bool, error) {
	if c.sessions == nil {
		return false, ErrNoSessions
	}
	if c.State() == domain.Active {
		return false, domain.ErrRestoreWhileActive
	}

	snap, ok, err := c.sessions.LoadIfExists(ctx, c.key)
	if err != nil {
		return false, fmt.Errorf("restore state: %w", err)
	}
	if !ok {
		return false, nil
	}
	if err := c.Restore(*snap, c.factory); err != nil {
		return false, fmt.Errorf("restore state: %w", err)
	}
	c.logger.Debug("state restored", "key", c.key, "depth", snap.Depth())
	return true, nil
}

// DiscardState deletes the snapshot stored under Key.
func (c *Controller) DiscardState(ctx context.Context) error {
	if c.sessions == nil {
		return ErrNoSessions
	}
	return c.sessions.Delete(ctx, c.key)
}

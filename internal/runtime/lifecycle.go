package runtime

import (
	"fmt"

	"github.com/aretw0/navstack/pkg/domain"
)

// State returns the current lifecycle state.
func (c *Controller) State() domain.Lifecycle {
	return c.state
}

// OnResume is the host hook for the container becoming interactive.
func (c *Controller) OnResume() {
	c.Transition(domain.EventResume)
}

// OnPause is the host hook for the container losing interactivity.
func (c *Controller) OnPause() {
	c.Transition(domain.EventPause)
}

// Transition applies a lifecycle event. Entering Active replays the
// transaction log in FIFO order; the log is empty afterwards unless a listener
// paused the controller mid-replay, in which case the unreplayed remainder is
// put back at the head of the log, ahead of anything queued after the pause.
func (c *Controller) Transition(event domain.LifecycleEvent) domain.Lifecycle {
	next, changed := domain.NextLifecycle(c.state, event)
	if !changed {
		return c.state
	}

	prev := c.state
	c.state = next
	if c.hooks.OnLifecycle != nil {
		c.hooks.OnLifecycle(domain.LifecycleChange{
			ContainerID: c.containerID,
			From:        prev,
			To:          next,
			Pending:     c.txlog.Len(),
		})
	}

	if next == domain.Active {
		c.replay()
	}
	return c.state
}

func (c *Controller) replay() {
	ops := c.txlog.Drain()
	if len(ops) == 0 {
		return
	}
	c.logger.Debug("replay started", "ops", len(ops))

	for i, op := range ops {
		if c.state != domain.Active {
			// A listener paused us; what is left runs first on the next resume.
			c.txlog.Prepend(ops[i:]...)
			c.logger.Debug("replay interrupted", "replayed", i, "deferred", len(ops)-i)
			return
		}
		executed := c.dispatch(op)
		if c.hooks.OnReplay != nil {
			c.hooks.OnReplay(op, executed)
		}
	}
	c.logger.Debug("replay finished", "ops", len(ops), "depth", c.stack.Len())
}

func (c *Controller) dispatch(op domain.Operation) bool {
	switch op.Kind {
	case domain.OpForward:
		return c.GoForward(op.Entry.Screen, op.Entry.Tag)
	case domain.OpReplace:
		return c.Replace(op.Entry.Screen, op.Entry.Tag)
	case domain.OpBack:
		return c.GoBack()
	case domain.OpReset:
		return c.Reset()
	case domain.OpResetTo:
		return c.ResetTo(op.Entry.Screen, op.Entry.Tag)
	default:
		panic(fmt.Sprintf("navstack: unknown operation kind %q", op.Kind))
	}
}

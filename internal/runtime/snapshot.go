package runtime

import (
	"fmt"
	"time"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
)

// Snapshot exports the current stack, root first. Pending operations are not
// part of the snapshot. Every screen on the stack must be Restorable.
func (c *Controller) Snapshot() (domain.Snapshot, error) {
	snap := domain.Snapshot{
		ContainerID: c.containerID,
		Entries:     make([]domain.SnapshotEntry, 0, c.stack.Len()),
		SavedAt:     time.Now().UTC(),
	}
	for i, e := range c.stack.Entries() {
		r, ok := e.Screen.(domain.Restorable)
		if !ok {
			c.logger.Warn("snapshot failed", "index", i, "screen", e.ScreenName())
			return domain.Snapshot{}, fmt.Errorf("entry %d (%s): %w", i, e.ScreenName(), domain.ErrNotRestorable)
		}
		d := r.Descriptor()
		snap.Entries = append(snap.Entries, domain.SnapshotEntry{
			Kind: d.Kind,
			Args: d.Args,
			Tag:  e.Tag,
		})
	}
	return snap, nil
}

// Restore rebuilds the screens of snap with factory and schedules them to be
// shown on the next resume. Any pending operations are discarded. Screens
// already on the stack are replaced when the restored chain is replayed.
func (c *Controller) Restore(snap domain.Snapshot, factory ports.ScreenFactory) error {
	if c.state == domain.Active {
		return domain.ErrRestoreWhileActive
	}
	if len(snap.Entries) == 0 {
		return nil
	}

	entries := make([]domain.Entry, 0, len(snap.Entries))
	for i, se := range snap.Entries {
		screen, err := factory.Create(domain.Descriptor{Kind: se.Kind, Args: se.Args})
		if err != nil {
			return fmt.Errorf("restore entry %d (%s): %w", i, se.Kind, err)
		}
		entries = append(entries, domain.Entry{Screen: screen, Tag: se.Tag})
	}

	dropped := c.txlog.Drain()
	if c.stack.IsEmpty() {
		for _, e := range entries {
			c.txlog.Append(domain.Forward(e))
		}
	} else {
		c.txlog.Append(domain.ResetTo(entries[0]))
		for _, e := range entries[1:] {
			c.txlog.Append(domain.Forward(e))
		}
	}
	c.logger.Debug("snapshot restored", "entries", len(entries), "dropped", len(dropped))
	return nil
}

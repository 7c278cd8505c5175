package runtime

import (
	"log/slog"

	"github.com/aretw0/navstack/internal/logging"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/google/uuid"
)

// Controller is the navigation state machine of a single container.
//
// While Suspended every navigation request is recorded in the transaction log
// and reported as deferred (false). While Active requests are executed against
// the container immediately. Resuming replays the log in issue order.
//
// A Controller is confined to the host's UI goroutine and is not safe for
// concurrent use.
type Controller struct {
	containerID string
	container   ports.Container

	stack *Stack
	txlog *TxLog
	state domain.Lifecycle

	ignoreDuplicateTags bool

	listener domain.TransitionListener
	hooks    domain.Hooks
	logger   *slog.Logger
}

// NewController creates a suspended controller that shows its screens in container.
// The container must not be nil.
func NewController(container ports.Container, opts ...Option) *Controller {
	c := &Controller{
		containerID: uuid.NewString(),
		container:   container,
		stack:       NewStack(),
		txlog:       NewTxLog(),
		state:       domain.Suspended,
		listener:    func(domain.TransitionEvent) {},
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("container", c.containerID)
	return c
}

// GoForward shows screen and pushes it on top of the stack.
func (c *Controller) GoForward(screen domain.Screen, tag string) bool {
	if screen == nil {
		return false
	}
	entry := domain.Entry{Screen: screen, Tag: tag}
	if c.state != domain.Active {
		c.deferOp(domain.Forward(entry))
		return false
	}
	if c.blocked(entry, false) {
		return false
	}

	from := c.topScreen()
	c.container.Show(c.containerID, screen)
	c.stack.Push(entry)
	c.emit(domain.OpForward, from, screen)
	return true
}

// GoForwardChain pushes every entry in order.
// While active it reports whether every forward executed; while suspended each
// entry is deferred as its own Forward operation and false is returned.
func (c *Controller) GoForwardChain(entries ...domain.Entry) bool {
	if len(entries) == 0 {
		return false
	}
	ok := true
	for _, e := range entries {
		if !c.GoForward(e.Screen, e.Tag) {
			ok = false
		}
	}
	return ok
}

// GoBack pops the top entry, detaches it and shows the entry below.
// It fails when there is nothing to go back to. While suspended that is judged
// on the stack the pending operations will leave behind; replay checks again.
func (c *Controller) GoBack() bool {
	if c.state != domain.Active {
		if c.projectedLen() > 1 {
			c.deferOp(domain.Back())
		}
		return false
	}
	if !c.CanGoBack() {
		return false
	}

	top, _ := c.stack.Pop()
	c.container.Detach(c.containerID, top.Screen)
	next, _ := c.stack.Peek()
	c.container.Show(c.containerID, next.Screen)
	c.emit(domain.OpBack, top.Screen, next.Screen)
	return true
}

// projectedLen estimates the stack size once the pending operations are
// replayed. Duplicate-tag blocking is not predicted.
func (c *Controller) projectedLen() int {
	n := c.stack.Len()
	for _, op := range c.txlog.Pending() {
		switch op.Kind {
		case domain.OpForward:
			n++
		case domain.OpReplace:
			if n == 0 {
				n = 1
			}
		case domain.OpBack:
			if n > 1 {
				n--
			}
		case domain.OpReset:
			n = min(n, 1)
		case domain.OpResetTo:
			n = 1
		}
	}
	return n
}

// OnBackPressed is the host back-button hook. It behaves like GoBack; a false
// result tells the host to handle the press itself (e.g. close the app).
func (c *Controller) OnBackPressed() bool {
	return c.GoBack()
}

// Replace detaches the top entry and shows screen in its place. The stack
// size is unchanged.
// On an empty stack it degrades to GoForward.
func (c *Controller) Replace(screen domain.Screen, tag string) bool {
	if screen == nil {
		return false
	}
	entry := domain.Entry{Screen: screen, Tag: tag}
	if c.state != domain.Active {
		c.deferOp(domain.Replace(entry))
		return false
	}
	if c.stack.IsEmpty() {
		return c.GoForward(screen, tag)
	}
	if c.blocked(entry, true) {
		return false
	}

	old, _ := c.stack.Pop()
	c.container.Detach(c.containerID, old.Screen)
	c.stack.Push(entry)
	c.container.Show(c.containerID, screen)
	c.emit(domain.OpReplace, old.Screen, screen)
	return true
}

// Reset collapses the stack back to its root, detaching every popped entry
// from the top down, and shows the root.
func (c *Controller) Reset() bool {
	if c.state != domain.Active {
		c.deferOp(domain.Reset())
		return false
	}
	if c.stack.IsEmpty() {
		return false
	}
	if c.stack.Len() == 1 {
		return true
	}

	from := c.topScreen()
	for _, e := range c.stack.TruncateTo(1) {
		c.container.Detach(c.containerID, e.Screen)
	}
	root, _ := c.stack.Peek()
	c.container.Show(c.containerID, root.Screen)
	c.emit(domain.OpReset, from, root.Screen)
	return true
}

// ResetTo empties the stack and makes screen its sole entry.
// While suspended it is recorded as a Reset followed by a Replace.
func (c *Controller) ResetTo(screen domain.Screen, tag string) bool {
	if screen == nil {
		return false
	}
	entry := domain.Entry{Screen: screen, Tag: tag}
	if c.state != domain.Active {
		c.deferOp(domain.Reset())
		c.deferOp(domain.Replace(entry))
		return false
	}

	from := c.topScreen()
	for _, e := range c.stack.TruncateTo(0) {
		c.container.Detach(c.containerID, e.Screen)
	}
	c.stack.Push(entry)
	c.container.Show(c.containerID, screen)
	c.emit(domain.OpResetTo, from, screen)
	return true
}

// CurrentScreen returns the visible screen.
// Returns domain.ErrEmptyStack when nothing has been pushed yet.
func (c *Controller) CurrentScreen() (domain.Screen, error) {
	top, ok := c.stack.Peek()
	if !ok {
		return nil, domain.ErrEmptyStack
	}
	return top.Screen, nil
}

// CanGoBack reports whether the stack holds more than one entry.
func (c *Controller) CanGoBack() bool {
	return c.stack.Len() > 1
}

// ContainerID returns the stable identifier of the managed container.
func (c *Controller) ContainerID() string {
	return c.containerID
}

// OnTransition registers the transition listener, replacing any previous one.
// A nil listener restores the no-op default.
func (c *Controller) OnTransition(listener domain.TransitionListener) {
	if listener == nil {
		listener = func(domain.TransitionEvent) {}
	}
	c.listener = listener
}

// Len returns the stack size.
func (c *Controller) Len() int {
	return c.stack.Len()
}

// Entries returns a copy of the stack, root first.
func (c *Controller) Entries() []domain.Entry {
	return c.stack.Entries()
}

// Pending returns a copy of the operations waiting for the next resume.
func (c *Controller) Pending() []domain.Operation {
	return c.txlog.Pending()
}

func (c *Controller) topScreen() domain.Screen {
	top, ok := c.stack.Peek()
	if !ok {
		return nil
	}
	return top.Screen
}

// blocked applies the duplicate-tag policy. A replace does not count the
// entry it pops as a duplicate.
func (c *Controller) blocked(e domain.Entry, replacingTop bool) bool {
	if !c.ignoreDuplicateTags {
		return false
	}
	dup := c.stack.ContainsTag(e.Tag)
	if replacingTop {
		dup = c.stack.ContainsTagBelowTop(e.Tag)
	}
	if !dup {
		return false
	}
	c.logger.Debug("duplicate tag ignored", "screen", e.ScreenName(), "tag", e.Tag)
	return true
}

func (c *Controller) deferOp(op domain.Operation) {
	c.txlog.Append(op)
	c.logger.Debug("operation deferred", "op", op.String(), "pending", c.txlog.Len())
	if c.hooks.OnDeferred != nil {
		c.hooks.OnDeferred(op)
	}
}

func (c *Controller) emit(kind domain.OpKind, from, to domain.Screen) {
	event := domain.TransitionEvent{
		Kind:  kind,
		From:  from,
		To:    to,
		Depth: c.stack.Len(),
	}
	c.listener(event)
	if c.hooks.OnTransition != nil {
		c.hooks.OnTransition(event)
	}
}

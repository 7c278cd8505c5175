package domain

// TransitionEvent describes a navigation that was executed against the container.
// From is nil when the stack was empty before the transition.
type TransitionEvent struct {
	Kind  OpKind
	From  Screen
	To    Screen
	Depth int // stack size after the transition
}

// TransitionListener observes executed (non-deferred) transitions.
type TransitionListener func(TransitionEvent)

// LifecycleChange describes a lifecycle transition of a controller.
type LifecycleChange struct {
	ContainerID string
	From        Lifecycle
	To          Lifecycle
	Pending     int // operations waiting in the log at the time of the change
}

// Hooks defines callbacks for controller observability.
// They complement the single TransitionListener and are meant for logging and metrics.
type Hooks struct {
	OnTransition func(TransitionEvent)
	OnDeferred   func(Operation)
	OnReplay     func(op Operation, executed bool)
	OnLifecycle  func(LifecycleChange)
}

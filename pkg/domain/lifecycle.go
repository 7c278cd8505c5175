package domain

// Lifecycle is the controller's activity state.
type Lifecycle string

const (
	Suspended Lifecycle = "suspended" // Initial state, navigation is deferred
	Active    Lifecycle = "active"    // Host resumed the container, navigation executes
)

// LifecycleEvent is a host signal that drives the lifecycle.
type LifecycleEvent string

const (
	EventResume LifecycleEvent = "resume"
	EventPause  LifecycleEvent = "pause"
)

// NextLifecycle returns the state reached from current on event, and whether
// the state actually changed. Unknown events and repeated signals are no-ops.
func NextLifecycle(current Lifecycle, event LifecycleEvent) (Lifecycle, bool) {
	switch {
	case current == Suspended && event == EventResume:
		return Active, true
	case current == Active && event == EventPause:
		return Suspended, true
	default:
		return current, false
	}
}

/*
Package navstack manages the navigation stack of a screen container.

A host application pushes, pops, replaces and resets a chain of screens shown
one at a time inside a single container. The chain survives the container's
lifecycle: requests made while the container is suspended are recorded and
replayed in order when it resumes, and the stack can be saved to a
SnapshotStore and rebuilt after the process restarts.

# Lifecycle

A Controller starts Suspended. Navigation calls made while suspended return
false and are queued. The host drives the lifecycle with OnResume and OnPause;
the first resume replays the queue, including the initial chain given to the
Builder.

	host := memory.NewContainer()
	nav, err := navstack.NewBuilder().
		AddScreen(home, "").
		Show(host, "main").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	nav.OnResume()               // home is shown
	nav.GoForward(details, "d")  // true, executed immediately
	nav.OnBackPressed()          // true, back on home

# Persistence

Screens that implement domain.Restorable can be snapshotted. With a
session.Manager and a ports.ScreenFactory configured through
Builder.WithSessions, SaveState and RestoreState move the stack in and out of
any SnapshotStore adapter (memory, file, redis, postgres).
*/
package navstack

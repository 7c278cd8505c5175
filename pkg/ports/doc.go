/*
Package ports defines the driven ports (interfaces) of the navstack controller.

These interfaces decouple the navigation state machine from the host UI and from
the persistence backends, allowing the same controller to drive a terminal UI,
a headless test container or any other screen host.

# Key Interfaces

  - Container: Shows and detaches screens inside a container identified by an opaque id.
  - Host: A Container that controllers can be attached to under an identifying key.
  - ScreenFactory: Rebuilds screens from descriptors when a stack is restored.
  - SnapshotStore: Persists and loads exported navigation stacks.
  - DistributedLocker: Provides distributed locking around snapshot writes.
*/
package ports

/*
Package domain contains the core domain models of the navstack controller.

It defines the entities the navigation state machine works with: the opaque
Screen handle, the stack Entry, the tagged Operation recorded while a controller
is suspended, the Lifecycle states and the Snapshot exported on save-state.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Screen: An opaque UI unit owned by the host. The controller compares it by identity.
  - Entry: A Screen plus its optional tag, as held in the navigation stack.
  - Operation: Forward, Replace, Back, Reset or ResetTo, queued while suspended.
  - Lifecycle: The Suspended/Active two-state machine driven by host signals.
  - Snapshot: The order-preserving export of the stack used across process death.
*/
package domain

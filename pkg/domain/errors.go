package domain

import "errors"

// ErrEmptyStack is returned when an operation needs at least one entry on the stack.
// It signals a caller contract violation, not a recoverable navigation outcome.
var ErrEmptyStack = errors.New("navigation stack is empty")

// ErrNotRestorable is returned when a snapshot is requested for a screen that
// does not implement Restorable.
var ErrNotRestorable = errors.New("screen is not restorable")

// ErrSnapshotNotFound is returned when a key cannot be found in the store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrRestoreWhileActive is returned when a restore is attempted on a resumed controller.
var ErrRestoreWhileActive = errors.New("cannot restore an active controller")

// ErrNoContainer is returned when a controller is built without a container to show screens in.
var ErrNoContainer = errors.New("no container configured")

// ErrKeyInUse is returned when a host already has a controller attached under a key.
var ErrKeyInUse = errors.New("container key already in use")

// ErrUnknownScreenKind is returned by factories that cannot build a descriptor's kind.
var ErrUnknownScreenKind = errors.New("unknown screen kind")

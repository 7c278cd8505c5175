package domain

import "time"

// SnapshotEntry is the serialized form of a stack Entry.
type SnapshotEntry struct {
	Kind string         `json:"kind"`
	Args map[string]any `json:"args,omitempty"`
	Tag  string         `json:"tag,omitempty"`
}

// Snapshot is the exported navigation stack, root first.
type Snapshot struct {
	ContainerID string          `json:"container_id"`
	Entries     []SnapshotEntry `json:"entries"`
	SavedAt     time.Time       `json:"saved_at"`
}

// Depth returns the number of entries in the snapshot.
func (s *Snapshot) Depth() int {
	return len(s.Entries)
}

// Top returns the last entry of the snapshot, or false if it is empty.
func (s *Snapshot) Top() (SnapshotEntry, bool) {
	if len(s.Entries) == 0 {
		return SnapshotEntry{}, false
	}
	return s.Entries[len(s.Entries)-1], true
}

/*
Package session serializes access to persisted navigation snapshots.

Several controllers, or several host processes, may save and restore under the
same key. The Manager keeps one reference-counted lock per key in memory and can
additionally take a distributed lock so replicas sharing a SnapshotStore do not
interleave their writes.
*/
package session

// Package reconciler compares the generated unit files with the current
// contents of the networkd directory and computes the minimal set of
// writes and deletions to bring them in sync.
//
// The directory is accessed through the Store interface so the engine can
// be tested against an in-memory implementation. The real DirStore reads
// the directory non-recursively, strips trailing newlines for comparison
// and manages ownership/permissions via stat/chmod/chown.
//
// Reconciliation is idempotent: applying a computed delta and reconciling
// again always yields an empty delta. There is no rollback; a failed run
// is repaired by running again.
package reconciler

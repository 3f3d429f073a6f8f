// Package syncs provides keyed locking for callers that share files or other
// resources identified by a comparable key.
package syncs

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the work is finished or ctx is cancelled. A cancelled
// context is a normal stop and is not reported as an error.
type Worker interface {
	Run(ctx context.Context) error
}

// SessionLocker is the part of an unlocked vault session the auto-lock
// worker drives.
type SessionLocker interface {
	// LockIfExpired locks the session once it has expired and reports
	// whether it is locked.
	LockIfExpired() bool
}

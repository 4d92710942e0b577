// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// DefaultCheckInterval is used when the auto-lock worker gets a zero or
// negative interval.
const DefaultCheckInterval = time.Minute

// SessionAutoLock locks a vault session once its session token expires.
type SessionAutoLock struct {
	session  SessionLocker
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionAutoLock creates a worker that checks session every interval.
func NewSessionAutoLock(session SessionLocker, interval time.Duration, logger *logger.Logger) *SessionAutoLock {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &SessionAutoLock{
		session:  session,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. It returns once the session is locked, either by
// expiry or by its owner, or when ctx is cancelled.
func (w *SessionAutoLock) Run(ctx context.Context) error {
	if w.session.LockIfExpired() {
		w.logger.Debug().Str("func", "SessionAutoLock.Run").Msg("session already locked")
		return nil
	}

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if w.session.LockIfExpired() {
				w.logger.Info().Str("func", "SessionAutoLock.Run").Msg("session locked, auto-lock worker stopped")
				return nil
			}
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/logger"
)

const defaultJanitorInterval = 5 * time.Minute

// IdleSessionPurger removes sessions that have been idle for too long.
type IdleSessionPurger interface {
	PurgeIdleSessions(ctx context.Context) (int64, error)
}

// SessionJanitor periodically purges idle sessions.
type SessionJanitor struct {
	purger   IdleSessionPurger
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionJanitor creates a janitor calling purger every interval. A zero
// or negative interval falls back to 5 minutes. The janitor is idle until
// Run is called.
func NewSessionJanitor(purger IdleSessionPurger, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}

	return &SessionJanitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

// Run stops any previous loop and starts a new one in the background.
func (j *SessionJanitor) Run() {
	j.Stop()

	j.mu.Lock()
	ctx, cancel := context.WithCancel(j.logger.WithContext(context.Background()))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				j.purge(ctx)
			}
		}
	}()
}

func (j *SessionJanitor) purge(ctx context.Context) {
	deleted, err := j.purger.PurgeIdleSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Str("func", "*SessionJanitor.purge").Msg("failed to purge idle sessions")
		}
		return
	}
	if deleted > 0 {
		j.logger.Debug().Int64("deleted", deleted).Msg("janitor pass finished")
	}
}

// Stop cancels the loop and waits for it to exit. It is a no-op when the
// janitor is not running.
func (j *SessionJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.logger.Info().Msg("session janitor stopped")
	}
	j.wg.Wait()
}

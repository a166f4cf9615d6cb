/*
 * Copyright 2025 StatusBridge Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sync reconciles the Zabbix service hierarchy with Statuspage
// components and component groups.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/statusbridge/statusbridge/pkg/logger"
)

// Service runs sequential reconciliation passes on a fixed interval.
// Passes never overlap; the next pass is scheduled only after the
// current one finished, success or failure.
type Service struct {
	config         Config
	source         SourceClient
	engine         Reconciler
	notifier       Notifier
	clock          Clock
	metrics        Metrics
	logger         logger.Logger
	failedAttempts int
}

// New creates the sync service driver. notifier may be nil when no
// webhook is configured; clock and metrics fall back to the real clock
// and no-op metrics.
func New(config *Config, source SourceClient, engine Reconciler, notifier Notifier, clock Clock, metrics Metrics, log logger.Logger) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = realClock{}
	}

	if metrics == nil {
		metrics = &NoOpMetrics{}
	}

	return &Service{
		config:   *config,
		source:   source,
		engine:   engine,
		notifier: notifier,
		clock:    clock,
		metrics:  metrics,
		logger:   log,
	}, nil
}

// Start runs one pass immediately, then one per poll interval, until the
// context is canceled or the bail threshold is reached.
func (s *Service) Start(ctx context.Context) error {
	interval := time.Duration(s.config.PollInterval)

	s.logger.Info().
		Dur("poll_interval", interval).
		Msg("Starting Zabbix to Statuspage sync")

	ticker := s.clock.Ticker(interval)
	defer ticker.Stop()

	if err := s.runPass(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			if err := s.runPass(ctx); err != nil {
				return err
			}
		}
	}
}

// Stop logs shutdown; there is no in-flight state to flush since passes
// run synchronously inside Start.
func (s *Service) Stop(_ context.Context) error {
	s.logger.Info().Msg("Sync service stopping")
	return nil
}

// FailedAttempts returns the current consecutive failure count.
func (s *Service) FailedAttempts() int {
	return s.failedAttempts
}

// runPass executes one reconciliation pass and applies the failure
// policy. Pass-level errors are absorbed here and only surface once the
// bail threshold is crossed; context cancellation always surfaces.
func (s *Service) runPass(ctx context.Context) error {
	s.metrics.RecordPassAttempt()

	start := s.clock.Now()
	err := s.syncOnce(ctx)
	elapsed := s.clock.Now().Sub(start)

	if err == nil {
		s.metrics.RecordPassSuccess(elapsed)

		if s.failedAttempts > 0 {
			s.failedAttempts = 0
			s.notify(ctx, 0, "")
		}

		s.logger.Info().
			Dur("poll_interval", time.Duration(s.config.PollInterval)).
			Msg("Sync completed, waiting before the next sync")

		return nil
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.metrics.RecordPassFailure(err, elapsed)
	s.failedAttempts++

	s.logger.Error().
		Err(err).
		Int("failed_attempts", s.failedAttempts).
		Msg("Sync failed, will retry on the next interval")

	if s.failedAttempts == s.config.Alerts.FailAttempts {
		detail := ""
		if s.config.Alerts.IncludeError {
			detail = err.Error()
		}

		s.notify(ctx, s.failedAttempts, detail)
	}

	if s.config.BailFailAttempts != 0 && s.failedAttempts >= s.config.BailFailAttempts {
		s.logger.Error().
			Int("failed_attempts", s.failedAttempts).
			Int("bail_threshold", s.config.BailFailAttempts).
			Msg("Too many consecutive sync failures, bailing out")

		return fmt.Errorf("%w: %d", ErrTooManyFailures, s.failedAttempts)
	}

	return nil
}

func (s *Service) syncOnce(ctx context.Context) error {
	services, err := s.source.ServiceHierarchy(ctx)
	if err != nil {
		return err
	}

	_, err = s.engine.Reconcile(ctx, services)

	return err
}

// notify sends a failure or restored alert. Notification failures are
// logged but never count as pass failures.
func (s *Service) notify(ctx context.Context, failedAttempts int, detail string) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.Notify(ctx, s.config.Statuspage.PageID, failedAttempts, detail); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to send alert notification")
	}
}

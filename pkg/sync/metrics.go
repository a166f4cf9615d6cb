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

package sync

import (
	gosync "sync"
	"time"
)

// MutationKind identifies one of the five target mutations.
type MutationKind string

const (
	MutationCreateComponent       MutationKind = "create_component"
	MutationDeleteComponent       MutationKind = "delete_component"
	MutationUpdateComponentStatus MutationKind = "update_component_status"
	MutationCreateComponentGroup  MutationKind = "create_component_group"
	MutationUpdateGroupMembers    MutationKind = "update_component_group_members"
)

// Metrics defines the interface for collecting sync service metrics.
type Metrics interface {
	RecordPassAttempt()
	RecordPassSuccess(duration time.Duration)
	RecordPassFailure(err error, duration time.Duration)
	RecordMutation(kind MutationKind)

	// Export metrics for monitoring systems
	GetMetrics() map[string]interface{}
}

// NoOpMetrics provides a no-op implementation of the Metrics interface.
type NoOpMetrics struct{}

func (*NoOpMetrics) RecordPassAttempt()                         {}
func (*NoOpMetrics) RecordPassSuccess(_ time.Duration)          {}
func (*NoOpMetrics) RecordPassFailure(_ error, _ time.Duration) {}
func (*NoOpMetrics) RecordMutation(_ MutationKind)              {}
func (*NoOpMetrics) GetMetrics() map[string]interface{}         { return map[string]interface{}{} }

// InMemoryMetrics collects counters in memory.
type InMemoryMetrics struct {
	mu            gosync.Mutex
	passAttempts  int64
	passSuccesses int64
	passFailures  int64
	lastError     string
	lastDuration  time.Duration
	mutations     map[MutationKind]int64
}

func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		mutations: make(map[MutationKind]int64),
	}
}

func (m *InMemoryMetrics) RecordPassAttempt() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.passAttempts++
}

func (m *InMemoryMetrics) RecordPassSuccess(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.passSuccesses++
	m.lastDuration = duration
}

func (m *InMemoryMetrics) RecordPassFailure(err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.passFailures++
	m.lastDuration = duration

	if err != nil {
		m.lastError = err.Error()
	}
}

func (m *InMemoryMetrics) RecordMutation(kind MutationKind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mutations[kind]++
}

func (m *InMemoryMetrics) GetMetrics() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	mutations := make(map[string]int64, len(m.mutations))
	for kind, count := range m.mutations {
		mutations[string(kind)] = count
	}

	return map[string]interface{}{
		"pass_attempts":  m.passAttempts,
		"pass_successes": m.passSuccesses,
		"pass_failures":  m.passFailures,
		"last_error":     m.lastError,
		"last_duration":  m.lastDuration.String(),
		"mutations":      mutations,
	}
}

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
	"context"
	"time"

	"github.com/statusbridge/statusbridge/pkg/models"
)

//go:generate mockgen -destination=mock_sync.go -package=sync github.com/statusbridge/statusbridge/pkg/sync SourceClient,StateFetcher,Mutator,Reconciler,Notifier

// SourceClient delivers the normalized service hierarchy from the
// monitoring source.
type SourceClient interface {
	ServiceHierarchy(ctx context.Context) ([]models.Service, error)
}

// StateFetcher reads the current state of the status target. The result
// is treated as a consistent snapshot for one reconciliation pass.
type StateFetcher interface {
	Components(ctx context.Context) ([]*models.Component, error)
	ComponentGroups(ctx context.Context) ([]*models.ComponentGroup, error)
}

// Mutator applies changes to the status target. Each call is a single,
// independently fallible, immediately applied side effect.
type Mutator interface {
	CreateComponent(ctx context.Context, name string) error
	DeleteComponent(ctx context.Context, id string) error
	UpdateComponentStatus(ctx context.Context, id string, status models.ComponentStatus) error
	CreateComponentGroup(ctx context.Context, name string, memberIDs []string) error
	UpdateComponentGroupMembers(ctx context.Context, id string, memberIDs []string) error
}

// Reconciler runs one reconciliation pass over the extracted hierarchy
// and reports whether any component-level mutation occurred.
type Reconciler interface {
	Reconcile(ctx context.Context, services []models.Service) (bool, error)
}

// Notifier announces sync failure streaks and their recovery.
type Notifier interface {
	Notify(ctx context.Context, pageID string, failedAttempts int, detail string) error
}

// Clock defines an interface for time-related operations (to mock ticker).
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker defines an interface for the ticker used in polling.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

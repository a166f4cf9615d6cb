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
	"fmt"

	"github.com/statusbridge/statusbridge/pkg/logger"
	"github.com/statusbridge/statusbridge/pkg/models"
)

// Engine reconciles the extracted service hierarchy against the status
// target. Matching is name based and case sensitive; mutations are
// applied immediately with no rollback.
type Engine struct {
	fetcher     StateFetcher
	mutator     Mutator
	allowDelete bool
	metrics     Metrics
	logger      logger.Logger
}

// NewEngine creates a reconciliation engine. A nil metrics falls back to
// the no-op implementation.
func NewEngine(fetcher StateFetcher, mutator Mutator, allowDelete bool, metrics Metrics, log logger.Logger) *Engine {
	if metrics == nil {
		metrics = &NoOpMetrics{}
	}

	return &Engine{
		fetcher:     fetcher,
		mutator:     mutator,
		allowDelete: allowDelete,
		metrics:     metrics,
		logger:      log,
	}
}

// Reconcile runs one pass: components first, then groups, unless any
// component-level mutation occurred. Group membership has to reference
// component ids from the snapshot, and a pass that created or deleted
// components has a stale snapshot; deferring group sync to the next pass
// avoids a second fetch round-trip. The returned bool reports whether
// components changed.
func (e *Engine) Reconcile(ctx context.Context, services []models.Service) (bool, error) {
	components, err := e.fetcher.Components(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch components: %w", err)
	}

	changed, err := e.reconcileComponents(ctx, services, components)
	if err != nil {
		return changed, err
	}

	if changed {
		e.logger.Warn().Msg("Components changed during this sync; group sync skipped and will run on the next pass")
		return true, nil
	}

	groups, err := e.fetcher.ComponentGroups(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch component groups: %w", err)
	}

	return false, e.reconcileGroups(ctx, services, components, groups)
}

// reconcileComponents matches every non-group source service against the
// target components, updating mismatched statuses and creating missing
// components. Unmatched target components are deleted afterwards when
// deletion is permitted; group members are never auto-deleted here.
func (e *Engine) reconcileComponents(ctx context.Context, services []models.Service, components []*models.Component) (bool, error) {
	changed := false

	for i := range services {
		svc := &services[i]
		if svc.IsGroup() {
			continue
		}

		component, err := findComponent(components, svc.Name)
		if err != nil {
			return changed, err
		}

		if component == nil {
			if err := e.mutator.CreateComponent(ctx, svc.Name); err != nil {
				return changed, err
			}

			e.metrics.RecordMutation(MutationCreateComponent)

			changed = true

			continue
		}

		component.Matched = true

		desired, err := MapStatus(svc.Status)
		if err != nil {
			return changed, err
		}

		if desired == component.Status {
			continue
		}

		e.logger.Debug().
			Str("name", component.Name).
			Str("target_status", string(component.Status)).
			Str("source_status", string(desired)).
			Msg("Component status mismatch, updating")

		if err := e.mutator.UpdateComponentStatus(ctx, component.ID, desired); err != nil {
			return changed, err
		}

		e.metrics.RecordMutation(MutationUpdateComponentStatus)
	}

	if !e.allowDelete {
		return changed, nil
	}

	for _, component := range components {
		if component.GroupMember || component.Matched {
			continue
		}

		e.logger.Debug().
			Str("component_id", component.ID).
			Str("name", component.Name).
			Msg("Component exists on the target but not in the source; configuration permits deletion")

		if err := e.mutator.DeleteComponent(ctx, component.ID); err != nil {
			return changed, err
		}

		e.metrics.RecordMutation(MutationDeleteComponent)

		changed = true
	}

	return changed, nil
}

// reconcileGroups creates missing groups and replaces the membership of
// existing ones whenever it differs from the expected set in either
// direction. Membership is always replaced wholesale.
func (e *Engine) reconcileGroups(ctx context.Context, services []models.Service, components []*models.Component, groups []*models.ComponentGroup) error {
	for i := range services {
		svc := &services[i]
		if !svc.IsGroup() {
			continue
		}

		expected, err := e.expectedMembers(services, components, svc.ID)
		if err != nil {
			return err
		}

		group := findGroup(groups, svc.Name)
		if group == nil {
			e.logger.Debug().
				Str("name", svc.Name).
				Strs("members", expected).
				Msg("Creating a new component group on the target")

			if err := e.mutator.CreateComponentGroup(ctx, svc.Name, expected); err != nil {
				return err
			}

			e.metrics.RecordMutation(MutationCreateComponentGroup)

			continue
		}

		if sameMembers(group.ComponentIDs, expected) {
			continue
		}

		e.logger.Debug().
			Str("group_id", group.ID).
			Str("name", group.Name).
			Strs("members", expected).
			Msg("Group membership differs, refreshing")

		if err := e.mutator.UpdateComponentGroupMembers(ctx, group.ID, expected); err != nil {
			return err
		}

		e.metrics.RecordMutation(MutationUpdateGroupMembers)
	}

	return nil
}

// expectedMembers resolves the component ids belonging to a group by
// matching its group-child services by name. A child with no matching
// target component is omitted; it is created during the component pass
// and joins the group on a later pass.
func (e *Engine) expectedMembers(services []models.Service, components []*models.Component, groupID string) ([]string, error) {
	var ids []string

	for i := range services {
		svc := &services[i]
		if svc.Role != models.RoleGroupChild || svc.ParentGroupID != groupID {
			continue
		}

		component, err := findComponent(components, svc.Name)
		if err != nil {
			return nil, err
		}

		if component == nil {
			continue
		}

		ids = append(ids, component.ID)
	}

	return ids, nil
}

// findComponent returns the component with the given name. More than one
// match fails with ErrAmbiguousNameMatch rather than silently picking
// the first.
func findComponent(components []*models.Component, name string) (*models.Component, error) {
	var found *models.Component

	for _, component := range components {
		if component.Name != name {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousNameMatch, name)
		}

		found = component
	}

	return found, nil
}

func findGroup(groups []*models.ComponentGroup, name string) *models.ComponentGroup {
	for _, group := range groups {
		if group.Name == name {
			return group
		}
	}

	return nil
}

// sameMembers compares two member id sets ignoring order.
func sameMembers(current, expected []string) bool {
	if len(current) != len(expected) {
		return false
	}

	set := make(map[string]struct{}, len(current))
	for _, id := range current {
		set[id] = struct{}{}
	}

	for _, id := range expected {
		if _, ok := set[id]; !ok {
			return false
		}
	}

	return true
}

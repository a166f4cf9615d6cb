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

package statuspage

import (
	"context"

	"github.com/statusbridge/statusbridge/pkg/logger"
	"github.com/statusbridge/statusbridge/pkg/models"
)

// DryRunMutator logs every mutation instead of sending it. It covers all
// five mutation kinds uniformly, so a dry run exercises the full
// reconciliation logic without touching the page.
type DryRunMutator struct {
	logger logger.Logger
}

// NewDryRunMutator creates a mutator that only logs.
func NewDryRunMutator(log logger.Logger) *DryRunMutator {
	return &DryRunMutator{logger: log}
}

func (m *DryRunMutator) CreateComponent(_ context.Context, name string) error {
	m.logger.Info().Str("name", name).Msg("Dry run: would create component")
	return nil
}

func (m *DryRunMutator) DeleteComponent(_ context.Context, id string) error {
	m.logger.Info().Str("component_id", id).Msg("Dry run: would delete component")
	return nil
}

func (m *DryRunMutator) UpdateComponentStatus(_ context.Context, id string, status models.ComponentStatus) error {
	m.logger.Info().
		Str("component_id", id).
		Str("status", string(status)).
		Msg("Dry run: would update component status")

	return nil
}

func (m *DryRunMutator) CreateComponentGroup(_ context.Context, name string, memberIDs []string) error {
	m.logger.Info().
		Str("name", name).
		Strs("members", memberIDs).
		Msg("Dry run: would create component group")

	return nil
}

func (m *DryRunMutator) UpdateComponentGroupMembers(_ context.Context, id string, memberIDs []string) error {
	m.logger.Info().
		Str("group_id", id).
		Strs("members", memberIDs).
		Msg("Dry run: would update component group membership")

	return nil
}

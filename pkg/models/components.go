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

package models

// ComponentStatus is the severity label used by the status target.
type ComponentStatus string

const (
	ComponentStatusOperational         ComponentStatus = "operational"
	ComponentStatusDegradedPerformance ComponentStatus = "degraded_performance"
	ComponentStatusPartialOutage       ComponentStatus = "partial_outage"
	ComponentStatusMajorOutage         ComponentStatus = "major_outage"
)

// Component is a component on the status target. Matched is transient
// reconciliation state: it starts false on every pass and is set once a
// corresponding source service has been found, which decides deletion
// eligibility.
type Component struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Status      ComponentStatus `json:"status"`
	GroupMember bool            `json:"group_member"`
	Matched     bool            `json:"-"`
}

// ComponentGroup is a component group on the status target.
type ComponentGroup struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ComponentIDs []string `json:"component_ids"`
}

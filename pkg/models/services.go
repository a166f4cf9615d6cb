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

// Package models contains the shared data types exchanged between the
// monitoring source, the reconciliation engine, and the status target.
package models

// ServiceStatus is the semantic severity of a monitored service.
type ServiceStatus string

const (
	ServiceStatusOperational ServiceStatus = "operational"
	ServiceStatusWarning     ServiceStatus = "warning"
	ServiceStatusAverage     ServiceStatus = "average"
	ServiceStatusHigh        ServiceStatus = "high"
	ServiceStatusDisaster    ServiceStatus = "disaster"
)

// ServiceRole describes where a service sits in the two-level hierarchy.
type ServiceRole string

const (
	RoleStandalone ServiceRole = "standalone"
	RoleGroup      ServiceRole = "group"
	RoleGroupChild ServiceRole = "group-child"
)

// Service is one entry of the normalized two-level hierarchy extracted
// from the monitoring source. Name is the sole matching key against the
// status target; it must be unique across the whole hierarchy, including
// across different groups.
type Service struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Status        ServiceStatus `json:"status"`
	Role          ServiceRole   `json:"role"`
	ParentGroupID string        `json:"parent_group_id,omitempty"` // set for RoleGroupChild only
}

// IsGroup reports whether the service is a group header.
func (s *Service) IsGroup() bool {
	return s.Role == RoleGroup
}

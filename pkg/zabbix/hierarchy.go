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

package zabbix

import (
	"fmt"
	"strconv"

	"github.com/statusbridge/statusbridge/pkg/logger"
	"github.com/statusbridge/statusbridge/pkg/models"
)

// StatusFromCode maps a Zabbix numeric trigger status to its semantic
// severity. Code 1 is unused by Zabbix.
func StatusFromCode(code int) (models.ServiceStatus, error) {
	switch code {
	case 0:
		return models.ServiceStatusOperational, nil
	case 2:
		return models.ServiceStatusWarning, nil
	case 3:
		return models.ServiceStatusAverage, nil
	case 4:
		return models.ServiceStatusHigh, nil
	case 5:
		return models.ServiceStatusDisaster, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownStatusCode, code)
	}
}

// BuildHierarchy extracts the two-level hierarchy under rootID from the
// flat service list: direct root children with no dependencies become
// standalone services, children with dependencies become groups, and
// each group's direct dependencies become group-child services. Deeper
// descendants are never traversed. Output order is deterministic:
// standalone services first, then each group followed by its children.
func BuildHierarchy(services []RawService, rootID string, log logger.Logger) ([]models.Service, error) {
	index := make(map[string]*RawService, len(services))
	for i := range services {
		index[services[i].ServiceID] = &services[i]
	}

	root, ok := index[rootID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, rootID)
	}

	var leaves, groups []*RawService

	for _, dep := range root.Dependencies {
		child, ok := index[dep.ServiceID]
		if !ok {
			continue
		}

		if len(child.Dependencies) == 0 {
			leaves = append(leaves, child)
		} else {
			groups = append(groups, child)
		}
	}

	out := make([]models.Service, 0, len(leaves)+len(groups))

	for _, rc := range leaves {
		status, err := serviceStatus(rc)
		if err != nil {
			return nil, err
		}

		log.Debug().
			Str("service_id", rc.ServiceID).
			Str("name", rc.Name).
			Msg("Found a service with no children")

		out = append(out, models.Service{
			ID:     rc.ServiceID,
			Name:   rc.Name,
			Status: status,
			Role:   models.RoleStandalone,
		})
	}

	for _, rg := range groups {
		status, err := serviceStatus(rg)
		if err != nil {
			return nil, err
		}

		log.Debug().
			Str("service_id", rg.ServiceID).
			Str("name", rg.Name).
			Msg("Found a service group")

		out = append(out, models.Service{
			ID:     rg.ServiceID,
			Name:   rg.Name,
			Status: status,
			Role:   models.RoleGroup,
		})

		for _, dep := range rg.Dependencies {
			gc, ok := index[dep.ServiceID]
			if !ok {
				continue
			}

			if len(gc.Dependencies) > 0 {
				// The status target has no nested groups, so anything
				// below a group child stays unsynced.
				log.Debug().
					Str("service_id", gc.ServiceID).
					Str("name", gc.Name).
					Str("group", rg.Name).
					Msg("Group child has further descendants; they will not be synced")
			}

			childStatus, err := serviceStatus(gc)
			if err != nil {
				return nil, err
			}

			out = append(out, models.Service{
				ID:            gc.ServiceID,
				Name:          gc.Name,
				Status:        childStatus,
				Role:          models.RoleGroupChild,
				ParentGroupID: rg.ServiceID,
			})
		}
	}

	return out, nil
}

func serviceStatus(raw *RawService) (models.ServiceStatus, error) {
	code, err := strconv.Atoi(raw.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatusCode, raw.Status)
	}

	return StatusFromCode(code)
}

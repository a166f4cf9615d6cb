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
	"fmt"

	"github.com/statusbridge/statusbridge/pkg/models"
)

// statusMapping maps monitoring severities to target severities. Both
// high and disaster collapse into a major outage; the target has no
// finer distinction above partial_outage.
var statusMapping = map[models.ServiceStatus]models.ComponentStatus{
	models.ServiceStatusOperational: models.ComponentStatusOperational,
	models.ServiceStatusWarning:     models.ComponentStatusDegradedPerformance,
	models.ServiceStatusAverage:     models.ComponentStatusPartialOutage,
	models.ServiceStatusHigh:        models.ComponentStatusMajorOutage,
	models.ServiceStatusDisaster:    models.ComponentStatusMajorOutage,
}

// MapStatus translates a monitoring-side service status to the target
// severity label.
func MapStatus(status models.ServiceStatus) (models.ComponentStatus, error) {
	mapped, ok := statusMapping[status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnmappedStatus, status)
	}

	return mapped, nil
}

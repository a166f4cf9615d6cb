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

import "errors"

var (
	// ErrUnmappedStatus is returned when a service status has no target
	// severity mapping. Extraction validates statuses first, so hitting
	// this indicates a programming error.
	ErrUnmappedStatus = errors.New("no severity mapping for service status")

	// ErrAmbiguousNameMatch is returned when more than one target
	// component carries the name of a source service. Names are the sole
	// matching key and must be unique within a sync scope.
	ErrAmbiguousNameMatch = errors.New("multiple target components share a name")

	// ErrTooManyFailures is returned by the driver once the consecutive
	// failure count reaches the configured bail threshold.
	ErrTooManyFailures = errors.New("consecutive sync failures reached bail threshold")
)

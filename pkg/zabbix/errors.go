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

import "errors"

var (
	// ErrAuthFailed means no session key could be obtained; without one
	// nothing can be synced, so callers treat this as fatal at startup.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRootNotFound means the configured root service id was not
	// present in the service list returned by the API.
	ErrRootNotFound = errors.New("root service not found")

	// ErrUnknownStatusCode means a service reported a numeric status
	// outside the known trigger severity range.
	ErrUnknownStatusCode = errors.New("unknown service status code")

	errUnexpectedStatusCode = errors.New("unexpected status code")
	errAPIError             = errors.New("zabbix api error")
)

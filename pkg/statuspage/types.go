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
	"github.com/statusbridge/statusbridge/pkg/models"
)

// Config holds the connection settings for a Statuspage page.
type Config struct {
	APIHost string          `json:"api_host" yaml:"api_host"`
	PageID  string          `json:"page_id" yaml:"page_id"`
	APIKey  string          `json:"api_key" yaml:"api_key"`
	Timeout models.Duration `json:"timeout" yaml:"timeout"`
}

// componentPayload is a component as returned by the Statuspage API.
type componentPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Group  bool   `json:"group"`
}

// groupPayload is a component group as returned by the Statuspage API.
type groupPayload struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Components []string `json:"components"`
}

// componentBody wraps component attributes for create and update calls.
type componentBody struct {
	Component componentAttrs `json:"component"`
}

type componentAttrs struct {
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

// groupBody wraps component group attributes for create and update calls.
type groupBody struct {
	ComponentGroup groupAttrs `json:"component_group"`
}

type groupAttrs struct {
	Name       string   `json:"name,omitempty"`
	Components []string `json:"components"`
}

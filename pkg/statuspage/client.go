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

// Package statuspage provides a client for the Statuspage component and
// component-group REST API.
package statuspage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/statusbridge/statusbridge/pkg/logger"
	"github.com/statusbridge/statusbridge/pkg/models"
)

const defaultTimeout = 10 * time.Second

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one Statuspage page. It implements both the state
// fetcher and the mutator side of reconciliation; every mutation is a
// single request applied immediately.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	logger     logger.Logger
}

// NewClient creates a Statuspage client scoped to the configured page.
func NewClient(config *Config, log logger.Logger) *Client {
	timeout := time.Duration(config.Timeout)
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(config.APIHost, "/") + "/v1/pages/" + config.PageID,
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Components returns the current components of the page.
func (c *Client) Components(ctx context.Context) ([]*models.Component, error) {
	var payload []componentPayload

	if err := c.do(ctx, http.MethodGet, "/components", nil, &payload); err != nil {
		return nil, err
	}

	components := make([]*models.Component, 0, len(payload))
	for _, p := range payload {
		components = append(components, &models.Component{
			ID:          p.ID,
			Name:        p.Name,
			Status:      models.ComponentStatus(p.Status),
			GroupMember: p.Group,
		})
	}

	return components, nil
}

// ComponentGroups returns the current component groups of the page.
func (c *Client) ComponentGroups(ctx context.Context) ([]*models.ComponentGroup, error) {
	var payload []groupPayload

	if err := c.do(ctx, http.MethodGet, "/component-groups", nil, &payload); err != nil {
		return nil, err
	}

	groups := make([]*models.ComponentGroup, 0, len(payload))
	for _, p := range payload {
		groups = append(groups, &models.ComponentGroup{
			ID:           p.ID,
			Name:         p.Name,
			ComponentIDs: p.Components,
		})
	}

	return groups, nil
}

// CreateComponent creates a component by name. No status is set at
// creation time; it is corrected on the following pass once the target
// snapshot includes the new component.
func (c *Client) CreateComponent(ctx context.Context, name string) error {
	body := componentBody{Component: componentAttrs{Name: name}}

	if err := c.do(ctx, http.MethodPost, "/components", body, nil); err != nil {
		return err
	}

	c.logger.Info().
		Str("name", name).
		Msg("Created a new component; its status will be updated during the next sync")

	return nil
}

// DeleteComponent removes a component.
func (c *Client) DeleteComponent(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/components/"+id, nil, nil); err != nil {
		return err
	}

	c.logger.Info().Str("component_id", id).Msg("Deleted component")

	return nil
}

// UpdateComponentStatus sets a component's status.
func (c *Client) UpdateComponentStatus(ctx context.Context, id string, status models.ComponentStatus) error {
	body := componentBody{Component: componentAttrs{Status: string(status)}}

	if err := c.do(ctx, http.MethodPatch, "/components/"+id, body, nil); err != nil {
		return err
	}

	c.logger.Info().
		Str("component_id", id).
		Str("status", string(status)).
		Msg("Updated component status")

	return nil
}

// CreateComponentGroup creates a component group with the given members.
func (c *Client) CreateComponentGroup(ctx context.Context, name string, memberIDs []string) error {
	body := groupBody{ComponentGroup: groupAttrs{Name: name, Components: memberIDs}}

	if err := c.do(ctx, http.MethodPost, "/component-groups", body, nil); err != nil {
		return err
	}

	c.logger.Info().
		Str("name", name).
		Strs("members", memberIDs).
		Msg("Created a new component group")

	return nil
}

// UpdateComponentGroupMembers replaces a group's membership wholesale.
func (c *Client) UpdateComponentGroupMembers(ctx context.Context, id string, memberIDs []string) error {
	body := groupBody{ComponentGroup: groupAttrs{Components: memberIDs}}

	if err := c.do(ctx, http.MethodPut, "/component-groups/"+id, body, nil); err != nil {
		return err
	}

	c.logger.Info().
		Str("group_id", id).
		Strs("members", memberIDs).
		Msg("Updated component group membership")

	return nil
}

// do sends one request and decodes the response into dst when non-nil.
// Any non-2xx response fails the call.
func (c *Client) do(ctx context.Context, method, path string, body, dst interface{}) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "OAuth "+c.apiKey)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d, response: %s", ErrUnexpectedStatusCode, resp.StatusCode, string(bodyBytes))
	}

	if dst != nil {
		return json.NewDecoder(resp.Body).Decode(dst)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

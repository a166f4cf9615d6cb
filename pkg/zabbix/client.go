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

// Package zabbix provides a client for the Zabbix JSON-RPC API and the
// extraction of the two-level service hierarchy under a root service.
package zabbix

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

const (
	defaultTimeout     = 10 * time.Second
	maxServiceAttempts = 2
)

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a Zabbix instance. It keeps the session key obtained
// from user.login and refreshes it once per service fetch when the API
// reports an expired session.
type Client struct {
	endpoint   string
	config     Config
	httpClient HTTPClient
	sessionKey string
	logger     logger.Logger
}

// NewClient creates a Zabbix client. The session key is not obtained
// until Authenticate is called.
func NewClient(config *Config, log logger.Logger) *Client {
	timeout := time.Duration(config.Timeout)
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint:   strings.TrimRight(config.APIHost, "/") + "/api_jsonrpc.php",
		config:     *config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Authenticate obtains a session key via user.login. The key persists
// for as long as configured in the Zabbix administrator settings.
func (c *Client) Authenticate(ctx context.Context) error {
	c.logger.Debug().Msg("Authenticating to Zabbix")

	resp, err := c.post(ctx, rpcRequest{
		JSONRPC: "2.0",
		Method:  "user.login",
		Params:  loginParams{User: c.config.Username, Password: c.config.Password},
		ID:      1,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}

	var key string
	if err := decodeResult(resp.Body, &key); err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	if key == "" {
		return ErrAuthFailed
	}

	c.sessionKey = key
	c.logger.Info().Msg("Authentication to Zabbix was successful, session key obtained")

	return nil
}

// GetServices fetches all services with their direct dependencies. A
// 401 or 403 response triggers exactly one reauthentication followed by
// one retry; a second failure is returned to the caller.
func (c *Client) GetServices(ctx context.Context) ([]RawService, error) {
	c.logger.Debug().Msg("Querying for Zabbix services")

	var lastStatus int

	for attempt := 0; attempt < maxServiceAttempts; attempt++ {
		resp, err := c.post(ctx, rpcRequest{
			JSONRPC: "2.0",
			Method:  "service.get",
			Params:  serviceGetParams{SelectDependencies: "extend"},
			ID:      1,
			Auth:    c.sessionKey,
		})
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusOK {
			var services []RawService
			err := decodeResult(resp.Body, &services)
			_ = resp.Body.Close()

			if err != nil {
				return nil, err
			}

			return services, nil
		}

		lastStatus = resp.StatusCode
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if (lastStatus == http.StatusUnauthorized || lastStatus == http.StatusForbidden) && attempt == 0 {
			c.logger.Info().
				Int("status", lastStatus).
				Msg("Service query rejected, the session key may have expired; reauthenticating and trying again")

			if err := c.Authenticate(ctx); err != nil {
				return nil, err
			}

			continue
		}

		break
	}

	return nil, fmt.Errorf("%w: %d", errUnexpectedStatusCode, lastStatus)
}

// ServiceHierarchy fetches the services and extracts the hierarchy under
// the configured root service id.
func (c *Client) ServiceHierarchy(ctx context.Context) ([]models.Service, error) {
	raw, err := c.GetServices(ctx)
	if err != nil {
		return nil, err
	}

	return BuildHierarchy(raw, c.config.RootServiceID, c.logger)
}

func (c *Client) post(ctx context.Context, body rpcRequest) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// decodeResult unwraps the JSON-RPC envelope into dst, surfacing API
// level errors carried in the error member.
func decodeResult(r io.Reader, dst interface{}) error {
	var envelope rpcResponse

	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return err
	}

	if envelope.Error != nil {
		return fmt.Errorf("%w: %w", errAPIError, envelope.Error)
	}

	return json.Unmarshal(envelope.Result, dst)
}

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

// Package alerts posts sync failure and recovery notifications to a
// webhook such as Slack.
package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/statusbridge/statusbridge/pkg/logger"
)

// Webhook calls are given a longer timeout than sync calls to ride out
// intermittent connectivity problems.
const defaultTimeout = 60 * time.Second

var errUnexpectedStatusCode = errors.New("unexpected status code")

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookAlerter posts plain-text messages to a webhook URL.
type WebhookAlerter struct {
	url        string
	httpClient HTTPClient
	logger     logger.Logger
}

type webhookMessage struct {
	Text string `json:"text"`
}

// NewWebhookAlerter creates an alerter for the given webhook URL. A zero
// timeout uses the default.
func NewWebhookAlerter(url string, timeout time.Duration, log logger.Logger) *WebhookAlerter {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &WebhookAlerter{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Notify announces a failure streak, or the recovery from one when
// failedAttempts is zero.
func (a *WebhookAlerter) Notify(ctx context.Context, pageID string, failedAttempts int, detail string) error {
	var msg string

	if failedAttempts > 0 {
		msg = fmt.Sprintf(
			"Zabbix <-> Statuspage sync failure. The statuspage %s data may be out of date!\n"+
				"Amount of failed sync attempts: %d. %s", pageID, failedAttempts, detail)
	} else {
		msg = fmt.Sprintf("Zabbix <-> Statuspage sync restored for page %s.", pageID)
	}

	a.logger.Debug().Str("url", a.url).Msg("Posting a message to the alert webhook")

	payload, err := json.Marshal(webhookMessage{Text: msg})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode, resp.StatusCode, string(bodyBytes))
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

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

package alerts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statusbridge/statusbridge/pkg/logger"
)

func newTestAlerter(t *testing.T, handler http.HandlerFunc) *WebhookAlerter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWebhookAlerter(server.URL, 0, logger.NewTestLogger())
}

func TestNotifyFailure(t *testing.T) {
	var got webhookMessage

	alerter := newTestAlerter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
	})

	err := alerter.Notify(context.Background(), "page1", 3, "connection refused")

	require.NoError(t, err)
	assert.Contains(t, got.Text, "sync failure")
	assert.Contains(t, got.Text, "page1")
	assert.Contains(t, got.Text, "failed sync attempts: 3")
	assert.Contains(t, got.Text, "connection refused")
}

func TestNotifyFailureWithoutDetail(t *testing.T) {
	var got webhookMessage

	alerter := newTestAlerter(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := alerter.Notify(context.Background(), "page1", 2, "")

	require.NoError(t, err)
	assert.Contains(t, got.Text, "failed sync attempts: 2")
}

func TestNotifyRestored(t *testing.T) {
	var got webhookMessage

	alerter := newTestAlerter(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := alerter.Notify(context.Background(), "page1", 0, "")

	require.NoError(t, err)
	assert.Contains(t, got.Text, "restored")
	assert.Contains(t, got.Text, "page1")
	assert.NotContains(t, got.Text, "failure")
}

func TestNotifyNonSuccessResponse(t *testing.T) {
	alerter := newTestAlerter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := alerter.Notify(context.Background(), "page1", 1, "boom")
	require.ErrorIs(t, err, errUnexpectedStatusCode)
}

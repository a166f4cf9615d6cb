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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statusbridge/statusbridge/pkg/models"
	"github.com/statusbridge/statusbridge/pkg/statuspage"
	"github.com/statusbridge/statusbridge/pkg/zabbix"
)

func validConfig() *Config {
	return &Config{
		Zabbix: zabbix.Config{
			APIHost:       "https://zabbix.example.com",
			Username:      "sync",
			Password:      "secret",
			RootServiceID: "42",
		},
		Statuspage: statuspage.Config{
			APIHost: "https://api.statuspage.io",
			PageID:  "page1",
			APIKey:  "key",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, models.Duration(60*time.Second), cfg.PollInterval)
}

func TestConfigValidateKeepsExplicitInterval(t *testing.T) {
	cfg := validConfig()
	cfg.PollInterval = models.Duration(5 * time.Second)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, models.Duration(5*time.Second), cfg.PollInterval)
}

func TestConfigValidateMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no zabbix host", func(c *Config) { c.Zabbix.APIHost = "" }},
		{"no zabbix credentials", func(c *Config) { c.Zabbix.Password = "" }},
		{"no root service", func(c *Config) { c.Zabbix.RootServiceID = "" }},
		{"no statuspage host", func(c *Config) { c.Statuspage.APIHost = "" }},
		{"no page id", func(c *Config) { c.Statuspage.PageID = "" }},
		{"no api key", func(c *Config) { c.Statuspage.APIKey = "" }},
		{"negative alert threshold", func(c *Config) { c.Alerts.FailAttempts = -1 }},
		{"negative bail threshold", func(c *Config) { c.BailFailAttempts = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

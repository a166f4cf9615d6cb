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
	"errors"
	"time"

	"github.com/statusbridge/statusbridge/pkg/logger"
	"github.com/statusbridge/statusbridge/pkg/models"
	"github.com/statusbridge/statusbridge/pkg/statuspage"
	"github.com/statusbridge/statusbridge/pkg/zabbix"
)

const defaultPollInterval = 60 * time.Second

var (
	errMissingZabbix      = errors.New("zabbix api_host, username and password are required")
	errMissingRootService = errors.New("zabbix root_service_id is required")
	errMissingStatuspage  = errors.New("statuspage api_host, page_id and api_key are required")
	errNegativeThreshold  = errors.New("failure thresholds must not be negative")
)

// AlertConfig controls the failure-streak webhook notifications.
type AlertConfig struct {
	WebhookURL   string          `json:"webhook_url" yaml:"webhook_url"`
	FailAttempts int             `json:"fail_attempts" yaml:"fail_attempts"`
	IncludeError bool            `json:"include_error" yaml:"include_error"`
	Timeout      models.Duration `json:"timeout" yaml:"timeout"`
}

// Config is the full sync service configuration.
type Config struct {
	Zabbix           zabbix.Config     `json:"zabbix" yaml:"zabbix"`
	Statuspage       statuspage.Config `json:"statuspage" yaml:"statuspage"`
	AllowDelete      bool              `json:"allow_delete" yaml:"allow_delete"`
	PollInterval     models.Duration   `json:"poll_interval" yaml:"poll_interval"`
	BailFailAttempts int               `json:"bail_fail_attempts" yaml:"bail_fail_attempts"`
	Alerts           AlertConfig       `json:"alerts" yaml:"alerts"`
	Logging          *logger.Config    `json:"logging" yaml:"logging"`
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.Zabbix.APIHost == "" || c.Zabbix.Username == "" || c.Zabbix.Password == "" {
		return errMissingZabbix
	}

	if c.Zabbix.RootServiceID == "" {
		return errMissingRootService
	}

	if c.Statuspage.APIHost == "" || c.Statuspage.PageID == "" || c.Statuspage.APIKey == "" {
		return errMissingStatuspage
	}

	if c.Alerts.FailAttempts < 0 || c.BailFailAttempts < 0 {
		return errNegativeThreshold
	}

	if time.Duration(c.PollInterval) == 0 {
		c.PollInterval = models.Duration(defaultPollInterval)
	}

	return nil
}

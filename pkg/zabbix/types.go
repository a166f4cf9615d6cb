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

import (
	"encoding/json"
	"fmt"

	"github.com/statusbridge/statusbridge/pkg/models"
)

// Config holds the connection settings for a Zabbix instance.
type Config struct {
	APIHost       string          `json:"api_host" yaml:"api_host"`
	Username      string          `json:"username" yaml:"username"`
	Password      string          `json:"password" yaml:"password"`
	RootServiceID string          `json:"root_service_id" yaml:"root_service_id"`
	Timeout       models.Duration `json:"timeout" yaml:"timeout"`
}

// rpcRequest is a JSON-RPC 2.0 request envelope for the Zabbix API.
type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int         `json:"id"`
	Auth    string      `json:"auth,omitempty"`
}

// rpcResponse is a JSON-RPC 2.0 response envelope for the Zabbix API.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("code %d: %s %s", e.Code, e.Message, e.Data)
}

type loginParams struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type serviceGetParams struct {
	SelectDependencies string `json:"selectDependencies"`
}

// RawService is a service record as returned by the Zabbix service.get
// API. Status is a stringified numeric trigger status.
type RawService struct {
	ServiceID    string              `json:"serviceid"`
	Name         string              `json:"name"`
	Status       string              `json:"status"`
	Dependencies []ServiceDependency `json:"dependencies"`
}

// ServiceDependency links a service to one of its direct children.
type ServiceDependency struct {
	ServiceID string `json:"serviceid"`
}

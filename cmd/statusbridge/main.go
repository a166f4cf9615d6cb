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

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/statusbridge/statusbridge/pkg/alerts"
	"github.com/statusbridge/statusbridge/pkg/config"
	"github.com/statusbridge/statusbridge/pkg/logger"
	"github.com/statusbridge/statusbridge/pkg/statuspage"
	"github.com/statusbridge/statusbridge/pkg/sync"
	"github.com/statusbridge/statusbridge/pkg/version"
	"github.com/statusbridge/statusbridge/pkg/zabbix"
)

func main() {
	configPath := flag.String("config", "/etc/statusbridge/statusbridge.json", "Path to config file")
	dryRun := flag.Bool("dry-run", false, "Log mutations instead of sending them to Statuspage")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgLoader := config.NewConfig(nil)

	var cfg sync.Config

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mainLogger, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	mainLogger.Info().
		Str("version", version.GetFullVersion()).
		Msg("Sync Zabbix services to Statuspage components starting")

	zbxClient := zabbix.NewClient(&cfg.Zabbix, mainLogger)

	// No services can be synced without a session; fail hard before
	// entering the loop.
	if err := zbxClient.Authenticate(ctx); err != nil {
		mainLogger.Fatal().Err(err).Msg("Failed to authenticate to Zabbix")
	}

	spClient := statuspage.NewClient(&cfg.Statuspage, mainLogger)

	var mutator sync.Mutator = spClient
	if *dryRun {
		mainLogger.Info().Msg("Dry run enabled, mutations will be logged but not sent")
		mutator = statuspage.NewDryRunMutator(mainLogger)
	}

	metrics := sync.NewInMemoryMetrics()
	engine := sync.NewEngine(spClient, mutator, cfg.AllowDelete, metrics, mainLogger)

	var notifier sync.Notifier
	if cfg.Alerts.WebhookURL != "" {
		notifier = alerts.NewWebhookAlerter(cfg.Alerts.WebhookURL, time.Duration(cfg.Alerts.Timeout), mainLogger)
	}

	service, err := sync.New(&cfg, zbxClient, engine, notifier, nil, metrics, mainLogger)
	if err != nil {
		mainLogger.Fatal().Err(err).Msg("Failed to create sync service")
	}

	err = service.Start(ctx)

	mainLogger.Info().Msg("Sync Zabbix services to Statuspage components stopping")

	if err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.Error().Err(err).Msg("Sync service failed")
		os.Exit(1)
	}
}

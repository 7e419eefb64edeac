/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// sbserver is the hosted side of the builder: accounts, project storage,
// AI generation, and exports over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"sitebuilder/internal/ai"
	"sitebuilder/internal/config"
	applog "sitebuilder/internal/log"
	"sitebuilder/internal/server"
	"sitebuilder/internal/telemetry"
	"sitebuilder/internal/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println(version.String())
			return
		}
	}

	cfg, apiKey, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	applog.Init(applog.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	telemetry.Install(telemetry.FromEnv(cfg.General.TelemetryOptIn))
	l := applog.WithComponent("sbserver")
	l.Info("starting", slog.String("version", version.String()), slog.String("addr", cfg.Server.Addr))

	if cfg.Server.DBURL == "" {
		cfg.Server.DBURL = "sitebuilder.db"
		l.Info("no database configured, using local sqlite file", slog.String("path", cfg.Server.DBURL))
	}

	var gen ai.Generator
	if apiKey != "" {
		client, err := ai.NewClient(context.Background(), apiKey, cfg.AI.Model)
		if err != nil {
			l.Error("ai client init failed, generation disabled", slog.Any("err", err))
		} else {
			gen = client
		}
	} else {
		l.Info("no AI API key configured, generation endpoints disabled")
	}

	if err := server.Start(cfg.Server, gen); err != nil {
		l.Error("server exited", slog.Any("err", err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

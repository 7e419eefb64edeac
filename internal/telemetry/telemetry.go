/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package telemetry is an opt-in, fire-and-forget sender for anonymous usage
// events and crash reports. Disabled by default; with no endpoint configured
// every call is a no-op even when opted in.
package telemetry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	applog "sitebuilder/internal/log"
	"sitebuilder/internal/version"
)

// Environment variables:
// - SB_TELEMETRY_OPT_IN: "1", "true", "yes", "on" enables event sending
// - SB_TELEMETRY_URL: endpoint events are POSTed to as JSON
// - SB_CRASH_UPLOAD_URL: endpoint crash reports are POSTed to as text
// - SB_TELEMETRY_TIMEOUT_MS: request timeout, default 1500

// Config controls the sender. The opt-in flag usually comes from the user
// config file; the env var wins when set.
type Config struct {
	OptIn     bool
	EventsURL string
	CrashURL  string
	Timeout   time.Duration
}

// FromEnv builds a Config from environment variables. optInDefault carries the
// value from the user config file.
func FromEnv(optInDefault bool) Config {
	cfg := Config{
		OptIn:     optInDefault,
		EventsURL: strings.TrimSpace(os.Getenv("SB_TELEMETRY_URL")),
		CrashURL:  strings.TrimSpace(os.Getenv("SB_CRASH_UPLOAD_URL")),
		Timeout:   1500 * time.Millisecond,
	}
	if v := strings.TrimSpace(os.Getenv("SB_TELEMETRY_OPT_IN")); v != "" {
		s := strings.ToLower(v)
		cfg.OptIn = s == "1" || s == "true" || s == "yes" || s == "on"
	}
	if ms := strings.TrimSpace(os.Getenv("SB_TELEMETRY_TIMEOUT_MS")); ms != "" {
		if d, err := time.ParseDuration(ms + "ms"); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Sender posts events asynchronously from a bounded queue. Events are dropped
// silently when the queue is full or a request fails; telemetry must never
// stall an edit or a save.
type Sender struct {
	cfg  Config
	log  *slog.Logger
	http *http.Client

	queue chan []byte
	stop  chan struct{}
	once  sync.Once
}

func New(cfg Config) *Sender {
	s := &Sender{
		cfg:   cfg,
		log:   applog.WithComponent("telemetry"),
		http:  &http.Client{Timeout: cfg.Timeout},
		queue: make(chan []byte, 64),
		stop:  make(chan struct{}),
	}
	go s.run()
	return s
}

var (
	std     *Sender
	stdOnce sync.Once
)

// Default returns the process-wide sender, built from env on first use.
func Default() *Sender {
	stdOnce.Do(func() { std = New(FromEnv(false)) })
	return std
}

// Install replaces the process-wide sender, e.g. after the user config with
// its opt-in preference has been loaded.
func Install(cfg Config) {
	stdOnce.Do(func() {})
	std = New(cfg)
}

// Enabled reports whether events would actually be sent.
func (s *Sender) Enabled() bool {
	return s != nil && s.cfg.OptIn && s.cfg.EventsURL != ""
}

// Event enqueues a usage event. Props must not carry user content.
func (s *Sender) Event(name string, props map[string]any) {
	if !s.Enabled() || name == "" {
		return
	}
	payload := map[string]any{
		"name":    name,
		"ts":      time.Now().UTC().Format(time.RFC3339Nano),
		"version": version.String(),
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
	}
	for k, v := range props {
		payload[k] = v
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	select {
	case s.queue <- b:
	default:
		// queue full, drop
	}
}

// Event sends through the process-wide sender.
func Event(name string, props map[string]any) { Default().Event(name, props) }

// UploadCrash posts a serialized crash report in its own goroutine. Requires
// opt-in and a crash endpoint.
func (s *Sender) UploadCrash(report []byte) {
	if s == nil || !s.cfg.OptIn || s.cfg.CrashURL == "" {
		return
	}
	body := append([]byte(nil), report...)
	go func() {
		resp, err := s.http.Post(s.cfg.CrashURL, "text/plain; charset=utf-8", bytes.NewReader(body))
		if err != nil {
			s.log.Debug("crash upload failed", slog.Any("err", err))
			return
		}
		_ = resp.Body.Close()
	}()
}

// UploadCrash sends through the process-wide sender.
func UploadCrash(report []byte) { Default().UploadCrash(report) }

// Close stops the background sender goroutine.
func (s *Sender) Close() { s.once.Do(func() { close(s.stop) }) }

// Drain waits up to the given duration for queued events to be sent.
func (s *Sender) Drain(max time.Duration) {
	deadline := time.Now().Add(max)
	for len(s.queue) > 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
}

func (s *Sender) run() {
	for {
		select {
		case <-s.stop:
			return
		case b := <-s.queue:
			resp, err := s.http.Post(s.cfg.EventsURL, "application/json", bytes.NewReader(b))
			if err != nil {
				s.log.Debug("event send failed", slog.Any("err", err))
				continue
			}
			_ = resp.Body.Close()
		}
	}
}

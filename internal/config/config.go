/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the
// user scope. Environment variables are treated as read-only overrides at
// runtime. Secrets (the AI API key) live in the OS keyring, not on disk.

type ServerConfig struct {
	Addr       string `yaml:"addr"`
	DBURL      string `yaml:"db_url"`
	AuthSecret string `yaml:"auth_secret"`
	ExportBase string `yaml:"export_base"` // base URL for export download links
	ExportDir  string `yaml:"export_dir"`  // directory export archives are written to
}

type AIConfig struct {
	Model     string `yaml:"model"`
	TimeoutMs int    `yaml:"timeout_ms"`
	// APIKey is not stored on disk; it lives in the OS keyring.
}

type GeneralConfig struct {
	TelemetryOptIn bool `yaml:"telemetry_opt_in"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Server        ServerConfig  `yaml:"server"`
	AI            AIConfig      `yaml:"ai"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false},
		Server: ServerConfig{
			Addr:       ":8080",
			DBURL:      "",
			ExportBase: "http://localhost:8080/exports",
			ExportDir:  "exports",
		},
		AI:      AIConfig{Model: "gemini-2.0-flash", TimeoutMs: 15000},
		Logging: LoggingConfig{Level: "info", Format: "console", File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvAddr           = "SB_ADDR"
	EnvDBURL          = "SB_DB_URL"
	EnvAuthSecret     = "SB_AUTH_SECRET"
	EnvExportBase     = "SB_EXPORT_BASE"
	EnvExportDir      = "SB_EXPORT_DIR"
	EnvAIModel        = "SB_AI_MODEL"
	EnvAITimeoutMs    = "SB_AI_TIMEOUT_MS"
	EnvAIAPIKey       = "SB_AI_API_KEY"
	EnvTelemetryOptIn = "SB_TELEMETRY_OPT_IN"
	EnvLogLevel       = "SB_LOG_LEVEL"
	EnvLogFormat      = "SB_LOG_FORMAT"
	EnvLogFile        = "SB_LOG_FILE"
)

// Service/keys for OS keyring.
const (
	keyringService = "SiteBuilder"
	keyringAIKey   = "ai_api_key"
)

// SecretStore abstracts the OS keyring, so tests can stub it.
type SecretStore interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
	Delete(service, key string) error
}

type osKeyring struct{}

func (osKeyring) Get(service, key string) (string, error) { return keyring.Get(service, key) }
func (osKeyring) Set(service, key, value string) error    { return keyring.Set(service, key, value) }
func (osKeyring) Delete(service, key string) error        { return keyring.Delete(service, key) }

var secretStore SecretStore = osKeyring{}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "SiteBuilder")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "SiteBuilder")
	default:
		base = filepath.Join(os.Getenv("HOME"), ".config", "sitebuilder")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides. The AI API key is returned separately: keyring first,
// SB_AI_API_KEY env as a final override.
func Load() (AppConfig, string, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, "", err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	key, _ := secretStore.Get(keyringService, keyringAIKey)
	if v := strings.TrimSpace(os.Getenv(EnvAIAPIKey)); v != "" {
		key = v
	}
	return cfg, key, nil
}

// Save writes the user config YAML and persists the AI API key into the OS
// keyring (if non-empty).
func Save(cfg AppConfig, aiAPIKey string) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	if aiAPIKey != "" {
		if err := secretStore.Set(keyringService, keyringAIKey, aiAPIKey); err != nil {
			return err
		}
	}
	return nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// booleans copy directly from file so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if src.Server.Addr != "" {
		dst.Server.Addr = src.Server.Addr
	}
	if src.Server.DBURL != "" {
		dst.Server.DBURL = src.Server.DBURL
	}
	if src.Server.AuthSecret != "" {
		dst.Server.AuthSecret = src.Server.AuthSecret
	}
	if src.Server.ExportBase != "" {
		dst.Server.ExportBase = src.Server.ExportBase
	}
	if src.Server.ExportDir != "" {
		dst.Server.ExportDir = src.Server.ExportDir
	}
	if src.AI.Model != "" {
		dst.AI.Model = src.AI.Model
	}
	if src.AI.TimeoutMs != 0 {
		dst.AI.TimeoutMs = src.AI.TimeoutMs
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBURL)); v != "" {
		cfg.Server.DBURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAuthSecret)); v != "" {
		cfg.Server.AuthSecret = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportBase)); v != "" {
		cfg.Server.ExportBase = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportDir)); v != "" {
		cfg.Server.ExportDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAIModel)); v != "" {
		cfg.AI.Model = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAITimeoutMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AI.TimeoutMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.General.TelemetryOptIn = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func parseBool(v string) bool {
	s := strings.ToLower(strings.TrimSpace(v))
	return s == "1" || s == "true" || s == "on" || s == "yes"
}

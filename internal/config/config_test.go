package config

import (
	"errors"
	"os"
	"testing"
)

// memStore is an in-memory SecretStore for tests.
type memStore struct{ m map[string]string }

func (s *memStore) Get(service, key string) (string, error) {
	v, ok := s.m[service+"/"+key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}
func (s *memStore) Set(service, key, value string) error {
	s.m[service+"/"+key] = value
	return nil
}
func (s *memStore) Delete(service, key string) error {
	delete(s.m, service+"/"+key)
	return nil
}

func withMemStore(t *testing.T) *memStore {
	t.Helper()
	old := secretStore
	ms := &memStore{m: map[string]string{}}
	secretStore = ms
	t.Cleanup(func() { secretStore = old })
	return ms
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("default addr = %q", cfg.Server.Addr)
	}
	if cfg.AI.TimeoutMs != 15000 {
		t.Fatalf("default ai timeout = %d", cfg.AI.TimeoutMs)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("default log level = %q", cfg.Logging.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvAddr, ":9999")
	t.Setenv(EnvAIModel, "gemini-test")
	t.Setenv(EnvTelemetryOptIn, "yes")
	cfg := Defaults()
	applyEnvOverrides(&cfg)
	if cfg.Server.Addr != ":9999" {
		t.Fatalf("addr override not applied: %q", cfg.Server.Addr)
	}
	if cfg.AI.Model != "gemini-test" {
		t.Fatalf("model override not applied: %q", cfg.AI.Model)
	}
	if !cfg.General.TelemetryOptIn {
		t.Fatal("telemetry opt-in override not applied")
	}
}

func TestMergeIntoPrefersFileValues(t *testing.T) {
	dst := Defaults()
	src := AppConfig{}
	src.Server.Addr = ":7070"
	src.Logging.Level = "DEBUG"
	mergeInto(&dst, &src)
	if dst.Server.Addr != ":7070" {
		t.Fatalf("addr not merged: %q", dst.Server.Addr)
	}
	if dst.Logging.Level != "debug" {
		t.Fatalf("level not normalized: %q", dst.Logging.Level)
	}
	// unset file fields keep defaults
	if dst.AI.Model != Defaults().AI.Model {
		t.Fatalf("model clobbered: %q", dst.AI.Model)
	}
}

func TestLoadReadsAPIKeyFromKeyringAndEnvWins(t *testing.T) {
	ms := withMemStore(t)
	ms.m[keyringService+"/"+keyringAIKey] = "ring-key"
	t.Setenv("HOME", t.TempDir())
	os.Unsetenv(EnvAIAPIKey)
	_, key, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if key != "ring-key" {
		t.Fatalf("expected keyring key, got %q", key)
	}
	t.Setenv(EnvAIAPIKey, "env-key")
	_, key, err = Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if key != "env-key" {
		t.Fatalf("expected env key override, got %q", key)
	}
}

func TestSavePersistsKeyToKeyring(t *testing.T) {
	ms := withMemStore(t)
	t.Setenv("HOME", t.TempDir())
	if err := Save(Defaults(), "secret123"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got := ms.m[keyringService+"/"+keyringAIKey]; got != "secret123" {
		t.Fatalf("keyring value = %q", got)
	}
}

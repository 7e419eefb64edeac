package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestDisabledByDefault(t *testing.T) {
	s := New(Config{Timeout: time.Second})
	defer s.Close()
	if s.Enabled() {
		t.Fatal("sender enabled without opt-in")
	}
	// must be a no-op, not a panic or a hang
	s.Event("project_opened", nil)
}

func TestOptInWithoutEndpointDropsEvents(t *testing.T) {
	s := New(Config{OptIn: true, Timeout: time.Second})
	defer s.Close()
	if s.Enabled() {
		t.Fatal("sender enabled without an endpoint")
	}
}

func TestEventDelivery(t *testing.T) {
	var mu sync.Mutex
	var got []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		mu.Lock()
		got = append(got, payload)
		mu.Unlock()
	}))
	defer srv.Close()

	s := New(Config{OptIn: true, EventsURL: srv.URL, Timeout: time.Second})
	defer s.Close()
	s.Event("export_completed", map[string]any{"format": "html"})
	s.Drain(2 * time.Second)

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("events received = %d", len(got))
	}
	if got[0]["name"] != "export_completed" || got[0]["format"] != "html" {
		t.Fatalf("payload = %v", got[0])
	}
	if got[0]["version"] == "" || got[0]["os"] == "" {
		t.Fatalf("missing ambient fields: %v", got[0])
	}
}

func TestUploadCrash(t *testing.T) {
	bodyCh := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1024)
		n, _ := r.Body.Read(buf)
		bodyCh <- string(buf[:n])
	}))
	defer srv.Close()

	s := New(Config{OptIn: true, CrashURL: srv.URL, Timeout: time.Second})
	defer s.Close()
	s.UploadCrash([]byte("panic: boom"))

	select {
	case body := <-bodyCh:
		if body != "panic: boom" {
			t.Fatalf("crash body = %q", body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("crash report never arrived")
	}
}

func TestFromEnvOverridesOptIn(t *testing.T) {
	t.Setenv("SB_TELEMETRY_OPT_IN", "true")
	t.Setenv("SB_TELEMETRY_URL", "http://example.invalid/t")
	t.Setenv("SB_TELEMETRY_TIMEOUT_MS", "250")
	cfg := FromEnv(false)
	if !cfg.OptIn {
		t.Fatal("env opt-in not applied")
	}
	if cfg.EventsURL != "http://example.invalid/t" {
		t.Fatalf("events url = %q", cfg.EventsURL)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
}

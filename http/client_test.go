package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDefaultTransportConfig(t *testing.T) {
	cfg := DefaultTransportConfig()

	if cfg.MaxIdleConns != 20 {
		t.Errorf("MaxIdleConns = %d, want 20", cfg.MaxIdleConns)
	}
	if cfg.MaxIdleConnsPerHost != 10 {
		t.Errorf("MaxIdleConnsPerHost = %d, want 10", cfg.MaxIdleConnsPerHost)
	}
	if cfg.MaxConnsPerHost != 20 {
		t.Errorf("MaxConnsPerHost = %d, want 20", cfg.MaxConnsPerHost)
	}
	if cfg.IdleConnTimeout != 90*time.Second {
		t.Errorf("IdleConnTimeout = %v, want 90s", cfg.IdleConnTimeout)
	}
	if !cfg.ForceAttemptHTTP2 {
		t.Error("ForceAttemptHTTP2 should be true")
	}
}

func TestTransportConfiguration(t *testing.T) {
	cfg := &Config{
		Timeout:   30 * time.Second,
		UserAgent: "test/1.0",
		Transport: TransportConfig{
			MaxIdleConns:        15,
			MaxIdleConnsPerHost: 8,
			MaxConnsPerHost:     16,
			IdleConnTimeout:     60 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	client := New(cfg)

	if client.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", client.Timeout)
	}

	ua, ok := client.Transport.(*userAgentTransport)
	if !ok {
		t.Fatal("transport is not *userAgentTransport")
	}
	transport, ok := ua.base.(*http.Transport)
	if !ok {
		t.Fatal("base transport is not *http.Transport")
	}

	if transport.MaxIdleConns != 15 {
		t.Errorf("MaxIdleConns = %d, want 15", transport.MaxIdleConns)
	}
	if transport.MaxIdleConnsPerHost != 8 {
		t.Errorf("MaxIdleConnsPerHost = %d, want 8", transport.MaxIdleConnsPerHost)
	}
	if transport.MaxConnsPerHost != 16 {
		t.Errorf("MaxConnsPerHost = %d, want 16", transport.MaxConnsPerHost)
	}
	if transport.IdleConnTimeout != 60*time.Second {
		t.Errorf("IdleConnTimeout = %v, want 60s", transport.IdleConnTimeout)
	}
}

func TestNewNilConfigUsesDefaults(t *testing.T) {
	client := New(nil)

	if client.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", client.Timeout)
	}
}

func TestUserAgentApplied(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	client := New(&Config{
		Timeout:   5 * time.Second,
		UserAgent: "ytdump-test/1.0",
		Transport: DefaultTransportConfig(),
	})

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	resp.Body.Close()

	if got != "ytdump-test/1.0" {
		t.Errorf("User-Agent = %q, want %q", got, "ytdump-test/1.0")
	}
}

package health

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testRouter(stats StatsFunc) http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewRouter("1.2.3", time.Now().Add(-time.Minute), stats, logger)
}

func TestBanner(t *testing.T) {
	srv := httptest.NewServer(testRouter(func() Stats { return Stats{} }))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "1.2.3") {
		t.Errorf("expected version in banner, got %q", body)
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(testRouter(func() Stats { return Stats{} }))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
	if body["version"] != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %v", body["version"])
	}
	if _, ok := body["uptime"]; !ok {
		t.Error("expected uptime field")
	}
}

func TestStats(t *testing.T) {
	srv := httptest.NewServer(testRouter(func() Stats {
		return Stats{Users: 3, Watchlists: 2, ActiveAlerts: 5, HandledUpdates: 99}
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	var got Stats
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	want := Stats{Users: 3, Watchlists: 2, ActiveAlerts: 5, HandledUpdates: 99}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := httptest.NewServer(testRouter(func() Stats { return Stats{} }))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

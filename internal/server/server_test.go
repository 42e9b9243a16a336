package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/simple-webapp/internal/config"
)

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(nil, nil, nil); err == nil {
		t.Fatal("New(nil) succeeded, want error")
	}
}

func TestStartWithoutSetup(t *testing.T) {
	s, err := New(config.Default(), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Start(); err == nil {
		t.Fatal("Start() without SetupHTTPServer succeeded")
	}
}

func TestUptimeIsMonotonic(t *testing.T) {
	s, err := New(config.Default(), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first := s.Uptime()
	time.Sleep(time.Millisecond)
	second := s.Uptime()

	if first < 0 || second < first {
		t.Errorf("uptime went backwards: %v then %v", first, second)
	}
}

func TestServeAndShutdown(t *testing.T) {
	s, err := New(config.Default(), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.SetupHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve(listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned %v after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after shutdown")
	}
}

package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"testing"
	"time"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	srv := &http.Server{
		Addr:    addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, time.Second, logger) }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + addr)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusNoContent {
				t.Fatalf("status = %d, want 204", resp.StatusCode)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never came up: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestBuildVersion(t *testing.T) {
	got := BuildVersion()
	want := Version + " (commit: " + Commit + ", built: " + BuildTime + ")"
	if got != want {
		t.Errorf("BuildVersion() = %q, want %q", got, want)
	}
}

func TestApplyBuildSettings(t *testing.T) {
	origCommit, origTime := Commit, BuildTime
	t.Cleanup(func() { Commit, BuildTime = origCommit, origTime })

	Commit, BuildTime = "unknown", "unknown"
	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
	})
	if Commit != "0123456789ab" {
		t.Errorf("Commit = %q, want short revision", Commit)
	}
	if BuildTime != "2026-01-02T03:04:05Z" {
		t.Errorf("BuildTime = %q", BuildTime)
	}

	Commit = "from-ldflags"
	applyBuildSettings([]debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffffffffff"}})
	if Commit != "from-ldflags" {
		t.Errorf("ldflags value should win, got %q", Commit)
	}
}

package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStreamEmitsAnnouncements(t *testing.T) {
	announcer := service.NewAnnouncer()
	announcer.Announce("Ana Torres")
	announcer.Announce("Berta Ruiz")

	h := NewStreamHandler(testLogger(), announcer, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest("GET", "/api/v1/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Stream(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stream did not stop after context cancellation")
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "data: Ana Torres\n\n") {
		t.Errorf("body missing first announcement: %q", body)
	}
	if !strings.Contains(body, "data: Berta Ruiz\n\n") {
		t.Errorf("body missing second announcement: %q", body)
	}
	if strings.Index(body, "Ana Torres") > strings.Index(body, "Berta Ruiz") {
		t.Error("announcements delivered out of order")
	}
}

func TestStreamKeepAliveWhenIdle(t *testing.T) {
	announcer := service.NewAnnouncer()
	h := NewStreamHandler(testLogger(), announcer, 30*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest("GET", "/api/v1/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Stream(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stream did not stop after context cancellation")
	}

	body := rec.Body.String()
	if !strings.Contains(body, ": keep-alive\n\n") {
		t.Errorf("idle stream emitted no keep-alive: %q", body)
	}
	if strings.Contains(body, "data:") {
		t.Errorf("idle stream emitted data events: %q", body)
	}
}

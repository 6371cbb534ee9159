package service

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestAnnouncerFIFO(t *testing.T) {
	a := NewAnnouncer()
	a.Announce("Ana")
	a.Announce("Berta")
	a.Announce("Carla")

	for _, want := range []string{"Ana", "Berta", "Carla"} {
		name, ok := a.Next(context.Background(), time.Second)
		if !ok {
			t.Fatalf("expected %q, got timeout", want)
		}
		if name != want {
			t.Errorf("Next() = %q, want %q", name, want)
		}
	}

	if pending := a.Pending(); pending != 0 {
		t.Errorf("Pending() = %d, want 0", pending)
	}
}

func TestAnnouncerTimeout(t *testing.T) {
	a := NewAnnouncer()

	start := time.Now()
	name, ok := a.Next(context.Background(), 50*time.Millisecond)
	if ok {
		t.Fatalf("expected timeout, got %q", name)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("Next() returned after %v, before the timeout", elapsed)
	}
}

func TestAnnouncerContextCancel(t *testing.T) {
	a := NewAnnouncer()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool, 1)
	go func() {
		_, ok := a.Next(ctx, time.Minute)
		done <- ok
	}()

	cancel()

	select {
	case ok := <-done:
		if ok {
			t.Error("expected ok=false on context cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("Next() did not return after context cancellation")
	}
}

func TestAnnouncerDeliversWhileWaiting(t *testing.T) {
	a := NewAnnouncer()

	done := make(chan string, 1)
	go func() {
		name, ok := a.Next(context.Background(), 5*time.Second)
		if ok {
			done <- name
		} else {
			done <- ""
		}
	}()

	time.Sleep(20 * time.Millisecond)
	a.Announce("Diana")

	select {
	case name := <-done:
		if name != "Diana" {
			t.Errorf("Next() = %q, want %q", name, "Diana")
		}
	case <-time.After(time.Second):
		t.Fatal("waiting Next() never received the announcement")
	}
}

func TestAnnouncerSingleDelivery(t *testing.T) {
	a := NewAnnouncer()

	const producers = 10
	const perProducer = 20

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				a.Announce("patient")
			}
		}()
	}
	wg.Wait()

	var mu sync.Mutex
	received := 0

	wg = sync.WaitGroup{}
	for c := 0; c < 4; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				_, ok := a.Next(context.Background(), 50*time.Millisecond)
				if !ok {
					return
				}
				mu.Lock()
				received++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if received != producers*perProducer {
		t.Errorf("received %d announcements, want %d", received, producers*perProducer)
	}
}

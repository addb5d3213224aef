package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muurk/simon/internal/events"
	"github.com/muurk/simon/internal/nav"
)

// scriptedMuxes returns a factory that feeds each new Mux the next script.
func scriptedMuxes(scripts ...string) (MuxFactory, *int) {
	calls := 0
	return func() (*events.Mux, error) {
		input := ""
		if calls < len(scripts) {
			input = scripts[calls]
		}
		calls++
		return events.New(strings.NewReader(input), events.Config{TickInterval: time.Hour})
	}, &calls
}

func TestRunLaunchesAndRefreshes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	player := &fakePlayer{}
	factory, calls := scriptedMuxes("\x1b[Bp", "q")
	opts := Options{
		Machine: nav.New(testTabs(t), nav.DefaultKeyMap("")),
		NewMux:  factory,
		Player:  player,
		Size:    func() (int, int) { return 100, 30 },
	}

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- Run(ctx, opts, &out) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("Run() did not return")
	}

	if len(player.calls) != 1 {
		t.Fatalf("player called %d times, want 1", len(player.calls))
	}
	if want := "player --fs /m/alpha.mp4"; player.calls[0] != want {
		t.Errorf("player call = %q, want %q", player.calls[0], want)
	}
	if *calls != 2 {
		t.Errorf("mux factory called %d times, want 2", *calls)
	}
	if !strings.Contains(out.String(), "Simon") {
		t.Error("output never drew the tab bar")
	}
}

func TestRunReportsLaunchFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	crash := errors.New("player crashed")
	player := &fakePlayer{err: crash}
	factory, _ := scriptedMuxes("\x1b[Bp")
	opts := Options{
		Machine: nav.New(testTabs(t), nav.DefaultKeyMap("")),
		NewMux:  factory,
		Player:  player,
	}

	done := make(chan error, 1)
	go func() { done <- Run(ctx, opts, &bytes.Buffer{}) }()

	select {
	case err := <-done:
		if !errors.Is(err, crash) {
			t.Fatalf("Run() error = %v, want %v", err, crash)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("Run() did not return")
	}
}

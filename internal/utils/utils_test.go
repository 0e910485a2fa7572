package utils

import (
	"testing"
	"time"
)

func TestStopwatch(t *testing.T) {
	sw := NewStopwatch(true)
	sw.Advance(0.05)
	sw.Advance(0.05)
	if sw.Elapsed() != 100*time.Millisecond {
		t.Errorf("Expected 100ms, got %v", sw.Elapsed())
	}

	sw.Pause()
	sw.Advance(1)
	if sw.Ms() != 100 {
		t.Errorf("Expected paused stopwatch to stay at 100ms, got %d", sw.Ms())
	}
	if !sw.IsPaused() {
		t.Error("Expected stopwatch to be paused")
	}

	sw.Start()
	sw.Advance(0.2)
	if sw.Ms() != 300 {
		t.Errorf("Expected 300ms after resume, got %d", sw.Ms())
	}

	sw.Restart()
	if sw.Elapsed() != 0 || sw.IsPaused() {
		t.Errorf("Expected restarted running stopwatch at zero, got %v paused=%v", sw.Elapsed(), sw.IsPaused())
	}
}

func TestStopwatchNotStarted(t *testing.T) {
	sw := NewStopwatch(false)
	sw.Advance(10)
	if sw.Elapsed() != 0 {
		t.Errorf("Expected zero, got %v", sw.Elapsed())
	}
}

func TestStopwatchIgnoresNegativeDelta(t *testing.T) {
	sw := NewStopwatch(true)
	sw.Advance(0.1)
	sw.Advance(-5)
	if sw.Ms() != 100 {
		t.Errorf("Expected 100ms, got %d", sw.Ms())
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		if x, y := a.Intn(920), b.Intn(920); x != y {
			t.Fatalf("Expected equal sequences, step %d: %d != %d", i, x, y)
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Expected seed 7, got %d", a.Seed())
	}
}

func TestPRNGTimeSeeded(t *testing.T) {
	if s := NewPRNGService(0).Seed(); s == 0 {
		t.Error("Expected non-zero seed when seeded from time")
	}
	r := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		if n := r.Intn(4); n < 0 || n > 3 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}
}

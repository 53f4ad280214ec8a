package core

import (
	"testing"
	"time"
)

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step <= 0 {
		t.Fatal("zero TPS must fall back to a positive step")
	}
	if fs.Due() != 1 {
		t.Fatal("first call should step once with a primed accumulator")
	}
}

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if got := fs.Due(); got != 1 {
		t.Fatalf("primed Due() = %d, want 1", got)
	}
	clock = clock.Add(250 * time.Millisecond)
	if got := fs.Due(); got != 2 {
		t.Fatalf("Due() after 250ms = %d, want 2", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("Due() after carry = %d, want 1", got)
	}
	clock = clock.Add(10 * time.Second)
	if got := fs.Due(); got != maxBurst {
		t.Fatalf("Due() after stall = %d, want %d", got, maxBurst)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due() after burst = %d, want 0", got)
	}
}

package auth

import (
	"testing"
	"time"
)

func TestLoginLimiter(t *testing.T) {
	clock := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	l := NewLoginLimiter(3)
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		if !l.Allow("Staff1") {
			t.Fatalf("attempt %d unexpectedly throttled", i+1)
		}
	}
	if l.Allow("Staff1") {
		t.Fatal("expected fourth attempt to be throttled")
	}
	if !l.Allow("Staff2") {
		t.Error("keys must be throttled independently")
	}

	t.Run("ActiveKeyIsNotForgotten", func(t *testing.T) {
		tracked := l.limiters["Staff1"]
		// One attempt every 20s matches the refill rate and keeps the bucket empty.
		for i := 0; i < 40; i++ {
			clock = clock.Add(20 * time.Second)
			l.Allow("Staff1")
		}
		if l.limiters["Staff1"] != tracked {
			t.Fatal("limiter of an active key was replaced")
		}
		if l.Allow("Staff1") {
			t.Error("active key regained a burst")
		}
	})

	t.Run("IdleKeyIsForgotten", func(t *testing.T) {
		if _, ok := l.limiters["Staff2"]; ok {
			t.Errorf("expected idle key to be dropped")
		}
	})
}

package clock

import (
	"math"
	"testing"
)

func TestAfterFiresOnceAtDueTime(t *testing.T) {
	c := New()
	var firedAt []float64
	c.After(100, func() { firedAt = append(firedAt, c.Now()) })

	c.Advance(50)
	if len(firedAt) != 0 {
		t.Fatalf("fired early at %v", firedAt)
	}
	c.Advance(60)
	c.Advance(500)

	if len(firedAt) != 1 {
		t.Fatalf("fired %d times, want 1", len(firedAt))
	}
	if firedAt[0] != 100 {
		t.Errorf("Now() during callback = %v, want 100", firedAt[0])
	}
	if c.Now() != 610 {
		t.Errorf("Now() = %v, want 610", c.Now())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after one-shot fired, want 0", c.Len())
	}
}

func TestEveryCatchesUpWithinOneAdvance(t *testing.T) {
	c := New()
	count := 0
	c.Every(100, func() { count++ })

	c.Advance(350)
	if count != 3 {
		t.Errorf("count = %d after 350ms, want 3", count)
	}
	c.Advance(50)
	if count != 4 {
		t.Errorf("count = %d after 400ms, want 4", count)
	}
}

func TestFiringOrder(t *testing.T) {
	c := New()
	var order []string
	c.After(30, func() { order = append(order, "c") })
	c.After(10, func() { order = append(order, "a") })
	c.After(10, func() { order = append(order, "b") })
	c.Advance(100)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name   string
		cancel bool
		want   int
	}{
		{"cancelled", true, 0},
		{"kept", false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			n := 0
			h := c.After(100, func() { n++ })
			if tt.cancel && !c.Cancel(h) {
				t.Fatal("Cancel returned false for a pending timer")
			}
			c.Advance(200)
			if n != tt.want {
				t.Errorf("fired %d times, want %d", n, tt.want)
			}
			if c.Cancel(h) {
				t.Error("second Cancel returned true")
			}
		})
	}
}

func TestRepeatingTimerCanCancelItself(t *testing.T) {
	c := New()
	n := 0
	var h Handle
	h = c.Every(10, func() {
		n++
		if n == 2 {
			c.Cancel(h)
		}
	})
	c.Advance(100)
	if n != 2 {
		t.Errorf("fired %d times, want 2", n)
	}
	if c.Pending(h) {
		t.Error("timer still pending after self-cancel")
	}
}

func TestPauseKeepsRemainingDelay(t *testing.T) {
	c := New()
	fired := false
	h := c.After(1000, func() { fired = true })

	c.Advance(400)
	c.Pause()
	c.Advance(5000)
	if fired {
		t.Fatal("timer fired while paused")
	}
	if c.Now() != 400 {
		t.Errorf("Now() moved while paused: %v", c.Now())
	}
	if rem, ok := c.Remaining(h); !ok || rem != 600 {
		t.Errorf("Remaining = %v, %v; want 600, true", rem, ok)
	}

	c.Resume()
	c.Advance(599)
	if fired {
		t.Fatal("timer fired 1ms early after resume")
	}
	c.Advance(1)
	if !fired {
		t.Error("timer did not fire at its remaining delay")
	}
}

func TestPauseFromCallbackStopsTime(t *testing.T) {
	c := New()
	later := false
	c.After(100, func() { c.Pause() })
	c.After(150, func() { later = true })

	c.Advance(1000)
	if later {
		t.Error("callback after pause point fired")
	}
	if c.Now() != 100 {
		t.Errorf("Now() = %v, want 100", c.Now())
	}
}

func TestPanickingCallbackIsIsolated(t *testing.T) {
	c := New()
	ran := false
	c.After(10, func() { panic("boom") })
	c.After(20, func() { ran = true })

	c.Advance(50)
	if !ran {
		t.Error("callback after a panicking one did not run")
	}
}

func TestNestedScheduling(t *testing.T) {
	c := New()
	var times []float64
	c.After(100, func() {
		c.After(50, func() { times = append(times, c.Now()) })
	})
	c.Advance(200)
	if len(times) != 1 || times[0] != 150 {
		t.Errorf("nested timer fired at %v, want [150]", times)
	}
}

func TestEveryClampsNonPositiveInterval(t *testing.T) {
	c := New()
	n := 0
	c.Every(0, func() { n++ })
	c.Advance(5)
	if n != 5 {
		t.Errorf("fired %d times in 5ms, want 5", n)
	}
}

func TestReset(t *testing.T) {
	c := New()
	c.After(10, func() { t.Error("timer survived Reset") })
	c.Advance(5)
	c.Pause()
	c.Reset()

	if c.Now() != 0 || c.Paused() || c.Len() != 0 {
		t.Errorf("after Reset: now=%v paused=%v len=%d", c.Now(), c.Paused(), c.Len())
	}
	c.Advance(100)
	if math.Abs(c.Now()-100) > 1e-9 {
		t.Errorf("Now() = %v, want 100", c.Now())
	}
}

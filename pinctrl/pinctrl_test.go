package pinctrl

import (
	"testing"
	"time"

	"boardcode-go/errcode"
)

// ---- Test doubles ----

type fakePin struct {
	n         int
	level     bool
	writes    []bool
	failAfter int // fail the Nth Set call (1-based); 0 = never
	config    string
}

func (p *fakePin) Number() int { return p.n }
func (p *fakePin) ConfigureOutput(initial bool) error {
	p.config = "out"
	p.level = initial
	return nil
}
func (p *fakePin) Set(level bool) error {
	if p.failAfter > 0 && len(p.writes)+1 >= p.failAfter {
		return &errcode.E{C: errcode.HardwareFault, Op: "set"}
	}
	p.writes = append(p.writes, level)
	p.level = level
	return nil
}

type sleepRecorder struct {
	calls []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) { s.calls = append(s.calls, d) }

func newTestController(t *testing.T, pin *fakePin) (*Controller, *sleepRecorder) {
	t.Helper()
	sr := &sleepRecorder{}
	c, err := New(pin, sr.sleep)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, sr
}

// ---- Tests ----

func TestNewConfiguresOutputLow(t *testing.T) {
	pin := &fakePin{n: 25}
	c, _ := newTestController(t, pin)
	if pin.config != "out" {
		t.Fatal("pin not configured as output")
	}
	if pin.level || c.State() {
		t.Fatal("fresh controller should start off")
	}
}

func TestNewNilPin(t *testing.T) {
	if _, err := New(nil, nil); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("expected invalid_params, got %v", err)
	}
}

func TestOnOffToggle(t *testing.T) {
	pin := &fakePin{}
	c, _ := newTestController(t, pin)

	if err := c.On(); err != nil || !c.State() || !pin.level {
		t.Fatalf("On failed: err=%v state=%v", err, c.State())
	}
	if err := c.Off(); err != nil || c.State() || pin.level {
		t.Fatalf("Off failed: err=%v state=%v", err, c.State())
	}
	// A toggle pair returns to the initial state.
	if err := c.Toggle(); err != nil || !c.State() {
		t.Fatalf("first toggle failed: err=%v state=%v", err, c.State())
	}
	if err := c.Toggle(); err != nil || c.State() {
		t.Fatalf("second toggle failed: err=%v state=%v", err, c.State())
	}
}

func TestBlinkSequence(t *testing.T) {
	pin := &fakePin{}
	c, sr := newTestController(t, pin)

	if err := c.Blink(3, 0); err != nil {
		t.Fatalf("blink failed: %v", err)
	}
	want := []bool{true, false, true, false, true, false}
	if len(pin.writes) != len(want) {
		t.Fatalf("wrote %d levels, want %d", len(pin.writes), len(want))
	}
	for i, w := range want {
		if pin.writes[i] != w {
			t.Fatalf("write %d = %v, want %v", i, pin.writes[i], w)
		}
	}
	// One suspend after every edge, even with zero delay.
	if len(sr.calls) != 6 {
		t.Fatalf("slept %d times, want 6", len(sr.calls))
	}
}

func TestBlinkDelayPassedThrough(t *testing.T) {
	pin := &fakePin{}
	c, sr := newTestController(t, pin)

	if err := c.Blink(1, 250*time.Millisecond); err != nil {
		t.Fatalf("blink failed: %v", err)
	}
	if len(sr.calls) != 2 || sr.calls[0] != 250*time.Millisecond || sr.calls[1] != 250*time.Millisecond {
		t.Fatalf("unexpected sleeps: %v", sr.calls)
	}
}

func TestBlinkZeroCount(t *testing.T) {
	pin := &fakePin{}
	c, sr := newTestController(t, pin)

	if err := c.Blink(0, time.Second); err != nil {
		t.Fatalf("blink failed: %v", err)
	}
	if len(pin.writes) != 0 || len(sr.calls) != 0 {
		t.Fatalf("zero-count blink did work: writes=%d sleeps=%d", len(pin.writes), len(sr.calls))
	}
}

func TestBlinkInvalidParams(t *testing.T) {
	pin := &fakePin{}
	c, _ := newTestController(t, pin)

	if err := c.Blink(-1, 0); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("negative count: expected invalid_params, got %v", err)
	}
	if err := c.Blink(1, -time.Second); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("negative delay: expected invalid_params, got %v", err)
	}
	if len(pin.writes) != 0 {
		t.Fatal("invalid params must not touch the pin")
	}
}

func TestBlinkAbortsOnFault(t *testing.T) {
	pin := &fakePin{failAfter: 4} // fail on the second cycle's off-write
	c, sr := newTestController(t, pin)

	err := c.Blink(3, 0)
	if errcode.Of(err) != errcode.HardwareFault {
		t.Fatalf("expected hardware_fault, got %v", err)
	}
	// on, off, on landed; the failing off-write did not.
	if len(pin.writes) != 3 {
		t.Fatalf("wrote %d levels before abort, want 3", len(pin.writes))
	}
	if len(sr.calls) != 3 {
		t.Fatalf("slept %d times before abort, want 3", len(sr.calls))
	}
	// State reflects the last successful write.
	if !c.State() {
		t.Fatal("state should be the last successful write (on)")
	}
}

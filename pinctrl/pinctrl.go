// Package pinctrl drives a single digital output line.
package pinctrl

import (
	"time"

	"boardcode-go/errcode"
)

// DigitalOut is the minimal write surface for one output line.
// Implementations live under platform/, one per board family.
type DigitalOut interface {
	Number() int
	ConfigureOutput(initial bool) error
	Set(level bool) error
}

// SleepFunc suspends the caller for roughly d. Injected so blink timing is
// testable without wall-clock waits; nil means time.Sleep.
type SleepFunc func(d time.Duration)

// Controller owns one output line for its lifetime. Callers must not bind
// two controllers to the same physical line.
type Controller struct {
	pin   DigitalOut
	sleep SleepFunc
	state bool
}

// New binds pin as an output and drives it low, so a fresh controller always
// starts from a known off state.
func New(pin DigitalOut, sleep SleepFunc) (*Controller, error) {
	if pin == nil {
		return nil, errcode.InvalidParams
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	if err := pin.ConfigureOutput(false); err != nil {
		return nil, err
	}
	return &Controller{pin: pin, sleep: sleep}, nil
}

// State reports the logical level of the last successful write.
func (c *Controller) State() bool { return c.state }

func (c *Controller) On() error  { return c.write(true) }
func (c *Controller) Off() error { return c.write(false) }

func (c *Controller) Toggle() error { return c.write(!c.state) }

// Blink runs count on/off cycles: on, sleep(delay), off, sleep(delay).
// A cycle count of zero does nothing. The sleep is invoked after every edge,
// including delay zero, so a blink always suspends exactly 2*count times.
// A pin fault aborts the sequence immediately.
func (c *Controller) Blink(count int, delay time.Duration) error {
	if count < 0 || delay < 0 {
		return errcode.InvalidParams
	}
	for i := 0; i < count; i++ {
		if err := c.write(true); err != nil {
			return err
		}
		c.sleep(delay)
		if err := c.write(false); err != nil {
			return err
		}
		c.sleep(delay)
	}
	return nil
}

func (c *Controller) write(level bool) error {
	if err := c.pin.Set(level); err != nil {
		return err
	}
	c.state = level
	return nil
}

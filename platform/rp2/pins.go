//go:build rp2040 || rp2350

package rp2

import "machine"

// Pin adapts a machine GPIO to the pinctrl.DigitalOut surface.
type Pin struct {
	p machine.Pin
}

// NewPin wraps GPIO number n. Claiming the same number twice is a wiring
// error; single-owner discipline is by construction, not checked here.
func NewPin(n int) *Pin { return &Pin{p: machine.Pin(n)} }

func (p *Pin) Number() int { return int(p.p) }

func (p *Pin) ConfigureOutput(initial bool) error {
	p.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.p.Set(initial)
	return nil
}

func (p *Pin) Set(level bool) error {
	p.p.Set(level)
	return nil
}

func (p *Pin) Get() bool { return p.p.Get() }

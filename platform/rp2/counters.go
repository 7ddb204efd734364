//go:build rp2040 || rp2350

package rp2

import (
	"machine"
	"runtime"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/shtc3"

	"boardcode-go/errcode"
	"boardcode-go/x/mathx"
)

// Plausible range for a temperature sample, deci-°C.
const tMinDeciC, tMaxDeciC = -400, 1250

// Counters reads RP2-family platform counters through the machine package.
// By default temperature comes from the on-die sensor; UseSHTC3 swaps in an
// external ambient sensor.
type Counters struct {
	ext *shtc3.Device
}

func NewCounters() *Counters { return &Counters{} }

// UseSHTC3 attaches an SHTC3 on the given I2C bus as the temperature source
// in place of the on-die sensor. The bus must already be configured.
func (c *Counters) UseSHTC3(bus drivers.I2C) {
	d := shtc3.New(bus)
	c.ext = &d
}

func (c *Counters) CPUFrequencyHz() (uint64, error) {
	return uint64(machine.CPUFrequency()), nil
}

func (c *Counters) FreeMemoryBytes() (uint64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	// HeapIdle is the free block count in bytes under TinyGo's GC.
	return ms.HeapIdle, nil
}

func (c *Counters) TemperatureMilliC() (int32, error) {
	if c.ext != nil {
		return c.readSHTC3()
	}
	mc := machine.ReadTemperature()
	if !mathx.Between(mc/100, int32(tMinDeciC), int32(tMaxDeciC)) {
		return 0, &errcode.E{C: errcode.HardwareFault, Op: "die_temp", Msg: "invalid_sample"}
	}
	return mc, nil
}

func (c *Counters) readSHTC3() (int32, error) {
	_ = c.ext.WakeUp()
	defer func() { _ = c.ext.Sleep() }()
	mc, _, err := c.ext.ReadTemperatureHumidity()
	if err != nil {
		return 0, errcode.Fault("shtc3_read", err)
	}
	return mc, nil
}

func (c *Counters) FlashSizeBytes() (uint64, error) {
	sz := machine.Flash.Size()
	if sz <= 0 {
		return 0, errcode.Unsupported
	}
	return uint64(sz), nil
}

func (c *Counters) BoardID() (string, error) {
	// Chip name ("rp2040", ...); the closest stable identifier the runtime has.
	return machine.Device, nil
}

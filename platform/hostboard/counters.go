//go:build !(rp2040 || rp2350)

// Package hostboard backs the helper layer with host-OS counters, for
// development machines standing in for a real board.
package hostboard

import (
	"context"
	"math"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"boardcode-go/errcode"
	"boardcode-go/x/mathx"
)

// gopsutil entry points, swappable in tests.
var (
	cpuInfo             = cpu.InfoWithContext
	virtualMemory       = mem.VirtualMemoryWithContext
	sensorsTemperatures = host.SensorsTemperaturesWithContext
	hostInfo            = host.InfoWithContext
	diskUsage           = disk.UsageWithContext
)

// Counters implements diag.Source on top of gopsutil.
type Counters struct {
	// Root is the filesystem whose capacity stands in for flash size.
	// Empty means "/".
	Root string
	// SensorKey, when set, selects the first temperature sensor whose key
	// contains it. Empty picks the first sensor reporting a value.
	SensorKey string
}

func (c *Counters) CPUFrequencyHz() (uint64, error) {
	infos, err := cpuInfo(context.Background())
	if err != nil {
		return 0, errcode.Fault("cpu_info", err)
	}
	for _, st := range infos {
		if st.Mhz > 0 {
			return uint64(st.Mhz * 1_000_000), nil
		}
	}
	return 0, &errcode.E{C: errcode.HardwareFault, Op: "cpu_info", Msg: "no frequency reported"}
}

func (c *Counters) FreeMemoryBytes() (uint64, error) {
	vm, err := virtualMemory(context.Background())
	if err != nil {
		return 0, errcode.Fault("virtual_memory", err)
	}
	return vm.Available, nil
}

func (c *Counters) TemperatureMilliC() (int32, error) {
	// gopsutil reports boards without sensors as an error whose type is
	// internal to the module, so an errored or empty list is treated as
	// absence rather than a fault.
	stats, err := sensorsTemperatures(context.Background())
	if err != nil || len(stats) == 0 {
		return 0, errcode.Unsupported
	}
	for _, st := range stats {
		if c.SensorKey != "" && !strings.Contains(st.SensorKey, c.SensorKey) {
			continue
		}
		if st.Temperature == 0 {
			continue
		}
		mc := mathx.Clamp(int64(st.Temperature*1000), math.MinInt32, math.MaxInt32)
		return int32(mc), nil
	}
	return 0, errcode.Unsupported
}

func (c *Counters) FlashSizeBytes() (uint64, error) {
	root := c.Root
	if root == "" {
		root = "/"
	}
	du, err := diskUsage(context.Background(), root)
	if err != nil {
		return 0, errcode.Fault("disk_usage", err)
	}
	return du.Total, nil
}

func (c *Counters) BoardID() (string, error) {
	info, err := hostInfo(context.Background())
	if err != nil {
		return "", errcode.Fault("host_info", err)
	}
	if info.HostID == "" {
		return "", errcode.Unsupported
	}
	return info.HostID, nil
}

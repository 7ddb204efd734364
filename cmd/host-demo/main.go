//go:build !(rp2040 || rp2350)

// Command host-demo runs the blink + diagnostics example on the host OS,
// with a simulated pin standing in for the LED.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"boardcode-go/diag"
	"boardcode-go/pinctrl"
	"boardcode-go/platform/hostboard"
	"boardcode-go/x/bytesfmt"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	pin := &hostboard.SimPin{N: 25}
	led, err := pinctrl.New(pin, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("led init failed")
	}

	rep, err := diag.New(&hostboard.Counters{}, "host sim")
	if err != nil {
		log.Fatal().Err(err).Msg("reporter init failed")
	}

	snap, err := rep.Snapshot()
	if err != nil {
		log.Fatal().Err(err).Msg("diagnostics failed")
	}
	ev := log.Info().
		Str("platform", snap.Platform).
		Uint64("cpu_frequency_hz", snap.CPUFrequencyHz).
		Str("free_memory", bytesfmt.Format(snap.FreeMemoryBytes)).
		Str("board_id", snap.BoardID)
	if snap.TemperatureMilliC != nil {
		ev = ev.Float64("temperature_c", float64(*snap.TemperatureMilliC)/1000)
	}
	if snap.FlashSizeBytes != nil {
		ev = ev.Str("flash_size", bytesfmt.Format(*snap.FlashSizeBytes))
	}
	ev.Msg("diagnostics snapshot")

	if err := led.Blink(5, 200*time.Millisecond); err != nil {
		log.Fatal().Err(err).Msg("blink failed")
	}
	log.Info().
		Int("writes", len(pin.Writes)).
		Bool("resting_level", pin.Get()).
		Msg("blink complete")
}

//go:build rp2040 || rp2350

// Command pico-blink: minimal blink + diagnostics example for RP2 boards.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/pico-blink
//
// Blink state lines are mirrored to UART0 (board defaults) so the example is
// observable without USB CDC.
package main

import (
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"boardcode-go/diag"
	"boardcode-go/pinctrl"
	"boardcode-go/platform/rp2"
	"boardcode-go/x/bytesfmt"
)

const ledPin = 25 // Pico onboard LED (GP25)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(3 * time.Second)
	println("== boardcode: pico blink demo ==")

	uart := uartx.UART0
	_ = uart.Configure(uartx.UARTConfig{BaudRate: 115200})

	led, err := pinctrl.New(rp2.NewPin(ledPin), nil)
	if err != nil {
		println("led init failed:", err.Error())
		return
	}

	rep, err := diag.New(rp2.NewCounters(), "rp2 tinygo")
	if err != nil {
		println("reporter init failed:", err.Error())
		return
	}
	printSnapshot(rep)

	// Startup flourish, then the endless 1 s loop.
	if err := led.Blink(5, 500*time.Millisecond); err != nil {
		println("blink failed:", err.Error())
		return
	}

	println("starting blink loop...")
	for {
		_ = led.On()
		announce(uart, "LED ON")
		time.Sleep(time.Second)

		_ = led.Off()
		announce(uart, "LED OFF")
		time.Sleep(time.Second)
	}
}

func announce(u *uartx.UART, msg string) {
	println(msg)
	_, _ = u.Write([]byte(msg + "\r\n"))
}

func printSnapshot(rep *diag.Reporter) {
	s, err := rep.Snapshot()
	if err != nil {
		println("diagnostics failed:", err.Error())
		return
	}
	println("platform:", s.Platform)
	println("cpu frequency:", uint32(s.CPUFrequencyHz/1_000_000), "MHz")
	println("free memory:", bytesfmt.Format(s.FreeMemoryBytes))
	if s.TemperatureMilliC != nil {
		println("temperature:", *s.TemperatureMilliC/1000, "C")
	}
	if s.FlashSizeBytes != nil {
		println("flash size:", bytesfmt.Format(*s.FlashSizeBytes))
	}
	println("board id:", s.BoardID)
}

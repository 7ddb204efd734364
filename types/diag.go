package types

// ---- Diagnostics snapshot ----

// BoardIDUnknown is the sentinel board id for boards that do not expose one.
const BoardIDUnknown = "unknown"

// DiagSnapshot is a point-in-time record of platform counters.
// Produced fresh on every query, immutable once built.
//
// Optional counters are pointers: nil means the board does not expose the
// value, never a partial read. Fixed-point milli-°C to suit TinyGo targets.
type DiagSnapshot struct {
	Platform        string `json:"platform"`
	CPUFrequencyHz  uint64 `json:"cpu_frequency_hz"`
	FreeMemoryBytes uint64 `json:"free_memory_bytes"`

	TemperatureMilliC *int32  `json:"temperature_milli_c,omitempty"`
	FlashSizeBytes    *uint64 `json:"flash_size_bytes,omitempty"`

	// BoardID is BoardIDUnknown when the board has no identifier.
	BoardID string `json:"board_id"`

	TS int64 `json:"ts_ms"`
}

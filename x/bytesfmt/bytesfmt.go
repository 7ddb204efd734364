// Package bytesfmt renders byte counts for humans.
package bytesfmt

import (
	"strconv"

	"boardcode-go/x/mathx"
)

const (
	kb = 1024
	mb = 1024 * 1024
)

// Format renders a byte count:
//
//	n < 1024        -> "<n> bytes"
//	n < 1024*1024   -> "<n/1024> KB"        (one decimal digit)
//	otherwise       -> "<n/1024/1024> MB"   (one decimal digit)
//
// The decimal digit rounds half away from zero, computed in integer tenths
// so the output is identical on host and MCU builds.
func Format(n uint64) string {
	switch {
	case n < kb:
		return strconv.FormatUint(n, 10) + " bytes"
	case n < mb:
		return fixed1(mathx.RoundDiv(n*10, kb)) + " KB"
	default:
		return fixed1(mathx.RoundDiv(n*10, mb)) + " MB"
	}
}

// fixed1 renders a value held in tenths as "<int>.<tenth>".
func fixed1(tenths uint64) string {
	return strconv.FormatUint(tenths/10, 10) + "." + strconv.FormatUint(tenths%10, 10)
}

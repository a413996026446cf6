package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloatRepr renders f as its shortest round-tripping decimal,
// always showing a fractional part: 0.75, 0.5, 1.0, 1e-05.
func FormatFloatRepr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		// strconv pads the exponent to two digits: 1e-05
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

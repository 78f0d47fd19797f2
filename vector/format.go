package vector

import (
	"math"
	"strconv"
	"strings"
)

const entrySeparator = "  "

// String renders u as a bracketed row, e.g. "[1.0  -2.5  3.0]".
// Entries are separated by two spaces; the empty vector renders as "[]".
func (u Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range u.entries {
		if i > 0 {
			sb.WriteString(entrySeparator)
		}
		sb.WriteString(FormatEntry(x))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatEntry renders a single entry with the shortest digits that round-trip.
//
// Values with magnitude in [1e-3, 1e7) (and zero) use plain decimal notation
// with at least one fractional digit ("1.0", "-0.25"). Everything else uses
// scientific notation with an unsigned, unpadded positive exponent ("1.0E7",
// "2.5E-4"). Non-finite values render as "NaN", "Infinity" and "-Infinity".
func FormatEntry(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	if abs := math.Abs(x); x == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(x, 'f', -1, 64))
	}

	// 'E' yields e.g. "1.5E+07" or "2E-04".
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(x, 'E', -1, 64), "E")
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	return withFraction(mantissa) + "E" + sign + strings.TrimLeft(exp[1:], "0")
}

func withFraction(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s + ".0"
	}
	return s
}

package graph

import (
	"math"
	"strconv"
)

// FormatFrequency renders an axis label value. Values from 1000 up are
// shown in kHz. The value is truncated (not rounded) to two decimals and
// printed with no decimals when whole, one decimal otherwise.
func FormatFrequency(v float64) string {
	if v >= 1000 {
		v /= 1000
	}
	v = math.Floor(v*100) / 100

	if math.Floor(v) == v {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

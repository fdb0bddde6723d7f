package file

import (
	"math"
	"strconv"
	"strings"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatSize renders a byte count using binary multiples and at most two
// decimals rounded half away from zero, e.g. 1536 -> "1.5 KB",
// 400000 -> "390.63 KB".
func FormatSize(bytes int64) string {
	sign := ""
	value := float64(bytes)
	if value < 0 {
		sign = "-"
		value = -value
	}

	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	value = math.Round(value*100) / 100
	if value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	num := strconv.FormatFloat(value, 'f', 2, 64)
	num = strings.TrimRight(strings.TrimRight(num, "0"), ".")
	return sign + num + " " + sizeUnits[unit]
}

package report

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCount renders n with comma thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatShare renders n as a percentage of total with one decimal. Ties
// round half up.
func FormatShare(n, total int) string {
	if total <= 0 {
		return "0.0%"
	}
	pct := float64(n) * 100 / float64(total)
	return fmt.Sprintf("%.1f%%", math.Floor(pct*10+0.5)/10)
}

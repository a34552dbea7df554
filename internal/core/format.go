package core

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count in IEC units ("1.5 GiB").
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}

// FormatDelta renders a size change with an explicit sign, so "+0 B" and
// "-12 MiB" read unambiguously in before/after reports.
func FormatDelta(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return "+" + humanize.IBytes(uint64(bytes))
}

// FormatDays renders a fractional day count rounded to whole days.
func FormatDays(days float64) string {
	return fmt.Sprintf("%.0f days", days)
}

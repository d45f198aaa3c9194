package render

import (
	"fmt"
	"time"
)

// GB formats a byte count as gibibytes with two decimals, e.g. "15.52 GB".
func GB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/(1<<30))
}

// MB formats a byte count as mebibytes with two decimals, e.g. "512.00 MB".
func MB(bytes uint64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1<<20))
}

// LocalTime formats t in the local timezone with second precision and the
// timezone abbreviation, e.g. "2023-04-01 09:30:15 CEST".
func LocalTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05 MST")
}

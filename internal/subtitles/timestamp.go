package subtitles

import "fmt"

// FormatTimestamp renders non-negative seconds as HH:MM:SS.mmm.
// Hours are unbounded (no wrap at 24) and milliseconds are truncated,
// not rounded, so 3661.9999 renders as 01:01:01.999.
// Callers must guarantee seconds >= 0.
func FormatTimestamp(seconds float64) string {
	whole := int(seconds)
	millis := int(seconds*1000) - whole*1000
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}

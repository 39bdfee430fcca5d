// Package timestamp converts float second offsets into the display formats
// used by the transcript and digest renderings.
package timestamp

import "fmt"

// Format converts seconds to the SRT timestamp format HH:MM:SS,mmm.
// Hours are unbounded, milliseconds are truncated rather than rounded.
func Format(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	millis := int64((seconds - float64(total)) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Clock converts seconds to a compact M:SS display, minutes unbounded.
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int64(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

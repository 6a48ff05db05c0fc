package output

import (
	"fmt"
	"time"
)

// TimeFormat selects how a fragment's begin/end seconds are rendered
// (§6 "Time representation", the times_as_duration flag).
type TimeFormat int

const (
	// TimeFormatClock renders H:MM:SS.mmm strings (the SMIL default).
	TimeFormatClock TimeFormat = iota
	// TimeFormatDuration renders a Go time.Duration value's String().
	TimeFormatDuration
)

// formatTime converts fractional seconds to the selected representation.
func formatTime(seconds float64, f TimeFormat) string {
	d := time.Duration(seconds * float64(time.Second))
	if f == TimeFormatDuration {
		return d.String()
	}

	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	ms := int64(d.Milliseconds()) % 1000

	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, secs, ms)
}

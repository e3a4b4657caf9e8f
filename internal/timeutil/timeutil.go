// Package timeutil converts between second counts and the clock-style
// duration literals accepted on the command line and by ffmpeg.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeconds parses a duration given either as a raw second count
// ("90", "838.86") or as an HH:MM:SS[.ms] literal ("01:23:45.5").
func ParseSeconds(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if !strings.Contains(value, ":") {
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("parse duration %q: %w", value, err)
		}
		return seconds, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("parse duration %q: expected HH:MM:SS or seconds", value)
	}
	var fields [3]float64
	for i, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, fmt.Errorf("parse duration %q: %w", value, err)
		}
		if parsed < 0 {
			return 0, fmt.Errorf("parse duration %q: negative component", value)
		}
		fields[i] = parsed
	}
	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

// FormatSeconds renders seconds as HH:MM:SS.cc, the form ffmpeg accepts for
// time parameters. Fractional seconds are kept to centisecond precision.
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}

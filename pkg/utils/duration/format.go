// ABOUTME: Duration parsing utilities for episode length fields
// ABOUTME: Converts clock-style duration strings into whole seconds

package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseToSeconds converts a duration string into whole seconds.
// Accepted forms: plain seconds ("1699"), MM:SS ("28:19") and
// HH:MM:SS ("01:02:03").
func ParseToSeconds(durationStr string) (int, error) {
	trimmed := strings.TrimSpace(durationStr)
	if trimmed == "" {
		return 0, fmt.Errorf("empty duration")
	}

	// Plain number of seconds
	if seconds, err := strconv.Atoi(trimmed); err == nil {
		return seconds, nil
	}

	parts := strings.Split(trimmed, ":")
	switch len(parts) {
	case 3: // HH:MM:SS
		hours, errH := strconv.Atoi(parts[0])
		minutes, errM := strconv.Atoi(parts[1])
		seconds, errS := strconv.Atoi(parts[2])
		if errH != nil || errM != nil || errS != nil {
			return 0, fmt.Errorf("unparseable duration %q", durationStr)
		}
		return hours*3600 + minutes*60 + seconds, nil
	case 2: // MM:SS
		minutes, errM := strconv.Atoi(parts[0])
		seconds, errS := strconv.Atoi(parts[1])
		if errM != nil || errS != nil {
			return 0, fmt.Errorf("unparseable duration %q", durationStr)
		}
		return minutes*60 + seconds, nil
	}

	return 0, fmt.Errorf("unparseable duration %q", durationStr)
}

// FormatSeconds converts whole seconds into HH:MM:SS, or MM:SS when
// the duration is under an hour.
func FormatSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

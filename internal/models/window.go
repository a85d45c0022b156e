package models

import "fmt"

// TimeWindow partitions the 24-hour clock into three disjoint buckets
type TimeWindow string

const (
	WindowDay     TimeWindow = "day"     // [6, 18)
	WindowEvening TimeWindow = "evening" // [18, 24)
	WindowNight   TimeWindow = "night"   // [0, 6)
)

// Windows returns all time windows in a stable order
func Windows() []TimeWindow {
	return []TimeWindow{WindowDay, WindowEvening, WindowNight}
}

// WindowForHour maps an hour of day (0-23) to its time window
func WindowForHour(hour int) TimeWindow {
	switch {
	case hour >= 6 && hour < 18:
		return WindowDay
	case hour >= 18:
		return WindowEvening
	default:
		return WindowNight
	}
}

// ParseWindow validates a window name from external input
func ParseWindow(s string) (TimeWindow, error) {
	switch TimeWindow(s) {
	case WindowDay, WindowEvening, WindowNight:
		return TimeWindow(s), nil
	}
	return "", fmt.Errorf("unknown time window: %q", s)
}

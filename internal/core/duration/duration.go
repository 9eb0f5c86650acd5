package duration

import "fmt"

// MinutesToLabel formats whole minutes as "MM:00".
func MinutesToLabel(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:00", minutes)
}

// SecondsToLabel formats a countdown in seconds as "MM:SS".
func SecondsToLabel(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ClampIncrement adds step to current without exceeding max.
func ClampIncrement(current, step, max int) int {
	if current+step > max {
		return max
	}
	return current + step
}

// ClampDecrement subtracts step from current without going below min.
func ClampDecrement(current, step, min int) int {
	if current-step < min {
		return min
	}
	return current - step
}

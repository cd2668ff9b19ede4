package domain

// IsOpen reports whether a place with the [open, close) window is open during hour.
// A window with open > close wraps past midnight; (0, 24) is open around the clock.
func IsOpen(open, close, hour int) bool {
	if open == 0 && close == 24 {
		return true
	}
	if open <= close {
		return open <= hour && hour < close
	}
	return hour >= open || hour < close
}

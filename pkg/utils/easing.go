package utils

// EaseOutQuad maps progress t in [0, 1] to eased progress that starts fast
// and slows down: 1 - (1-t)².
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Progress converts elapsed/total into a clamped [0, 1] progress value.
// A non-positive total counts as finished.
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(elapsed/total, 0, 1)
}

package session

// step moves cur by delta inside [0, n-1]. On an empty sequence the cursor is
// pinned at 0.
func step(cur, n, delta int) int {
	if n <= 0 {
		return 0
	}
	next := cur + delta
	switch {
	case next < 0:
		return 0
	case next > n-1:
		return n - 1
	default:
		return next
	}
}

package cooldown

import "time"

// Remaining reports how many whole seconds of the cooldown are left since the
// last delivery, truncated toward zero. ok is false when the cooldown has
// elapsed (or never started).
func Remaining(lastAt time.Time, cooldown time.Duration, now time.Time) (int, bool) {
	if lastAt.IsZero() || cooldown <= 0 {
		return 0, false
	}
	remaining := cooldown - now.Sub(lastAt)
	if remaining <= 0 {
		return 0, false
	}
	return int(remaining / time.Second), true
}

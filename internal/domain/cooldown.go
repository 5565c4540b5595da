package domain

import (
	"fmt"
	"math"
	"time"
)

// FormatRemaining renders a cooldown duration the way the account list
// shows it: whole minutes rounded up, split into hours past the first
// hour ("45m", "1h 5m").
func FormatRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return ""
	}

	minutes := int(math.Ceil(remaining.Minutes()))
	if minutes > 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}

	return fmt.Sprintf("%dm", minutes)
}

package domain

import (
	"strings"
	"time"
)

type AccountID string

// Account is one stored session credential for the watched service.
// Key is the credential itself and the identity used for cooldown
// attribution; it never changes once the account exists. AvailableAt is
// set while the account is cooling down after a detected rate limit.
type Account struct {
	ID          AccountID
	Name        string
	Key         string
	AvailableAt *time.Time
}

// InCooldown reports whether the account is unusable at now.
// A missing or elapsed AvailableAt means the account is usable.
func (a Account) InCooldown(now time.Time) bool {
	return a.AvailableAt != nil && a.AvailableAt.After(now)
}

// RemainingCooldown returns the time left until the account becomes
// usable, or zero when it already is.
func (a Account) RemainingCooldown(now time.Time) time.Duration {
	if !a.InCooldown(now) {
		return 0
	}

	return a.AvailableAt.Sub(now)
}

// MaskedKey returns the key shortened for display.
func (a Account) MaskedKey() string {
	if len(a.Key) <= 18 {
		return a.Key
	}

	return a.Key[:12] + "..." + a.Key[len(a.Key)-6:]
}

// NormalizeKey trims whitespace and strips one pair of surrounding
// double quotes, which keys pasted from browser devtools often carry.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 && strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) {
		key = key[1 : len(key)-1]
	}

	return key
}

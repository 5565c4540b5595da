package application

import "github.com/mlvx/limitwatch/internal/domain"

// Status is the read model the status view renders: the account plus
// whether it currently holds the active-session marker. Remaining
// cooldown is derived from Account.AvailableAt against the viewer's
// "now" at render time.
type Status struct {
	Account domain.Account
	Active  bool
}

package cooldown

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mlvx/limitwatch/internal/domain"
	"github.com/mlvx/limitwatch/internal/ports"
)

// DefaultTolerance is how close two resolved timestamps must be to count
// as the same detection. A still-visible notice is re-scanned every few
// seconds; without this window every cycle would rewrite the store.
const DefaultTolerance = time.Minute

// Resolver turns a raw detection into an absolute cooldown timestamp on
// the active account, at most once per distinct detection.
type Resolver struct {
	accounts  ports.AccountRepository
	state     ports.ActiveStateRepository
	notifier  ports.Notifier
	tolerance time.Duration

	// Serializes read-compare-write; the store itself is not
	// transactional across readers and writers.
	mu sync.Mutex
}

func NewResolver(accounts ports.AccountRepository, state ports.ActiveStateRepository, notifier ports.Notifier, tolerance time.Duration) *Resolver {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return &Resolver{
		accounts:  accounts,
		state:     state,
		notifier:  notifier,
		tolerance: tolerance,
	}
}

// Apply attributes the detection to whichever account is currently
// marked active and reconciles it. No marker means no attribution: the
// detection is discarded without error.
func (r *Resolver) Apply(ctx context.Context, det domain.Detection) (bool, error) {
	activeKey, err := r.state.ActiveKey(ctx)
	if err != nil {
		return false, fmt.Errorf("read active key: %w", err)
	}
	if activeKey == "" {
		return false, nil
	}

	return r.Reconcile(ctx, activeKey, det)
}

// Reconcile resolves det against the account stored under activeKey.
// It reports whether the store was written. A marker pointing at no
// stored account discards the detection silently; a resolved timestamp
// within tolerance of the stored one is a duplicate and is a no-op.
func (r *Resolver) Reconcile(ctx context.Context, activeKey string, det domain.Detection) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, err := r.accounts.GetByKey(ctx, activeKey)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up active account: %w", err)
	}

	availableAt, err := NextOccurrence(det.TimeText, det.ObservedAt)
	if err != nil {
		return false, fmt.Errorf("resolve detection time: %w", err)
	}

	if account.AvailableAt != nil && absDuration(account.AvailableAt.Sub(availableAt)) < r.tolerance {
		return false, nil
	}

	account.AvailableAt = &availableAt
	if err := r.accounts.Save(ctx, account); err != nil {
		return false, fmt.Errorf("save account cooldown: %w", err)
	}

	if r.notifier != nil {
		r.notifier.Notify(fmt.Sprintf("Limit detected: %s", det.TimeText))
	}

	return true, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mlvx/limitwatch/internal/domain"
	"github.com/mlvx/limitwatch/internal/ports"
)

// Service carries the account operations the CLI exposes: the roster
// itself, the active-account marker, and manual cooldown overrides.
type Service struct {
	repo  ports.AccountRepository
	state ports.ActiveStateRepository
	clock ports.Clock
}

func NewService(repo ports.AccountRepository, state ports.ActiveStateRepository, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{repo: repo, state: state, clock: clock}
}

// AddAccount stores a new credential. The key is normalized before the
// uniqueness check; a duplicate key leaves the store untouched.
func (s *Service) AddAccount(ctx context.Context, name, key string) (domain.Account, error) {
	name = strings.TrimSpace(name)
	key = domain.NormalizeKey(key)
	if name == "" {
		return domain.Account{}, errors.New("account name is required")
	}
	if key == "" {
		return domain.Account{}, errors.New("account key is required")
	}

	id, err := s.nextAccountID(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{ID: id, Name: name, Key: key}
	if err := s.repo.Add(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("add account: %w", err)
	}

	return account, nil
}

// RenameAccount changes the display name. The key is the account's
// identity and never changes here, so cooldown attribution survives
// the edit.
func (s *Service) RenameAccount(ctx context.Context, id domain.AccountID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("account name is required")
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	account.Name = name

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account name: %w", err)
	}

	return nil
}

func (s *Service) RemoveAccount(ctx context.Context, id domain.AccountID) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove account: %w", err)
	}

	return nil
}

// ReorderAccounts moves the account at position from to position to.
// Order is user priority; nothing else in the system changes it.
func (s *Service) ReorderAccounts(ctx context.Context, from, to int) error {
	if err := s.repo.Reorder(ctx, from, to); err != nil {
		return fmt.Errorf("reorder accounts: %w", err)
	}

	return nil
}

// SwitchAccount marks the account as the one authenticated in the
// watched session. Detections are attributed to this account until the
// marker moves.
func (s *Service) SwitchAccount(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	if err := s.state.SetActiveKey(ctx, account.Key); err != nil {
		return domain.Account{}, fmt.Errorf("set active key: %w", err)
	}

	return account, nil
}

// NextAvailable switches to the first account in priority order that
// is not cooling down, preferring one other than the current active.
func (s *Service) NextAvailable(ctx context.Context) (domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("list accounts: %w", err)
	}

	activeKey, err := s.state.ActiveKey(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("read active key: %w", err)
	}

	now := s.clock.Now()
	var fallback *domain.Account
	for i := range accounts {
		account := accounts[i]
		if account.InCooldown(now) {
			continue
		}
		if account.Key == activeKey {
			if fallback == nil {
				fallback = &accounts[i]
			}
			continue
		}

		if err := s.state.SetActiveKey(ctx, account.Key); err != nil {
			return domain.Account{}, fmt.Errorf("set active key: %w", err)
		}
		return account, nil
	}

	if fallback != nil {
		return *fallback, nil
	}

	return domain.Account{}, errors.New("no account is currently available")
}

// SetCooldown is the manual override: the user declares the account
// unusable for the given duration. It writes the same field the
// resolver reconciles against, so later detections compare cleanly.
func (s *Service) SetCooldown(ctx context.Context, id domain.AccountID, d time.Duration) error {
	if d <= 0 {
		return errors.New("cooldown duration must be positive")
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	availableAt := s.clock.Now().Add(d)
	account.AvailableAt = &availableAt

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account cooldown: %w", err)
	}

	return nil
}

func (s *Service) ClearCooldown(ctx context.Context, id domain.AccountID) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	account.AvailableAt = nil

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account cooldown: %w", err)
	}

	return nil
}

func (s *Service) Statuses(ctx context.Context) ([]Status, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	activeKey, err := s.state.ActiveKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("read active key: %w", err)
	}

	statuses := make([]Status, 0, len(accounts))
	for _, account := range accounts {
		statuses = append(statuses, Status{
			Account: account,
			Active:  account.Key != "" && account.Key == activeKey,
		})
	}

	return statuses, nil
}

func (s *Service) nextAccountID(ctx context.Context) (domain.AccountID, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list accounts: %w", err)
	}

	next := 1
	for _, account := range accounts {
		if n, err := strconv.Atoi(string(account.ID)); err == nil && n >= next {
			next = n + 1
		}
	}

	return domain.AccountID(strconv.Itoa(next)), nil
}

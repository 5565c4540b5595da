package toml

import (
	"fmt"
	"time"

	"github.com/mlvx/limitwatch/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	ActiveKey string          `toml:"active_key,omitempty"`
	Accounts  []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Key         string `toml:"key"`
	AvailableAt string `toml:"available_at,omitempty"`
}

func toSchema(account domain.Account) accountSchema {
	encoded := accountSchema{
		ID:   string(account.ID),
		Name: account.Name,
		Key:  account.Key,
	}
	if account.AvailableAt != nil {
		encoded.AvailableAt = formatTime(*account.AvailableAt)
	}

	return encoded
}

func fromSchema(account accountSchema) domain.Account {
	decoded := domain.Account{
		ID:   domain.AccountID(account.ID),
		Name: account.Name,
		Key:  account.Key,
	}
	if availableAt := parseTime(account.AvailableAt); !availableAt.IsZero() {
		decoded.AvailableAt = &availableAt
	}

	return decoded
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}

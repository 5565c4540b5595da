package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mlvx/limitwatch/internal/domain"
)

// minImportKeyLength filters obvious junk (headers, blank columns) out
// of delimited imports; real session keys are far longer.
const minImportKeyLength = 11

// exportedAccount is the interchange shape shared with the browser
// extension this tool grew out of: availableAt travels as epoch
// milliseconds and is omitted when the account is usable.
type exportedAccount struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	AvailableAt int64  `json:"availableAt,omitempty"`
}

// Export writes the full roster as an indented JSON array.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return errors.New("no accounts to export")
	}

	exported := make([]exportedAccount, 0, len(accounts))
	for _, account := range accounts {
		entry := exportedAccount{Name: account.Name, Key: account.Key}
		if account.AvailableAt != nil {
			entry.AvailableAt = account.AvailableAt.UnixMilli()
		}
		exported = append(exported, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exported); err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	return nil
}

// Import reads accounts from r and appends the ones whose keys are not
// already stored. It accepts the JSON export format or one account per
// line as "name|key" or "name,key". Returns how many were added.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read import data: %w", err)
	}

	candidates := parseImport(data)
	if len(candidates) == 0 {
		return 0, errors.New("no accounts recognized in import data")
	}

	added := 0
	for _, candidate := range candidates {
		key := domain.NormalizeKey(candidate.Key)
		if key == "" {
			continue
		}

		name := strings.TrimSpace(candidate.Name)
		if name == "" {
			name = "Imported"
		}

		id, err := s.nextAccountID(ctx)
		if err != nil {
			return added, err
		}

		account := domain.Account{ID: id, Name: name, Key: key}
		if candidate.AvailableAt > 0 {
			availableAt := time.UnixMilli(candidate.AvailableAt)
			account.AvailableAt = &availableAt
		}

		if err := s.repo.Add(ctx, account); err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				continue
			}
			return added, fmt.Errorf("add imported account: %w", err)
		}
		added++
	}

	return added, nil
}

func parseImport(data []byte) []exportedAccount {
	var fromJSON []exportedAccount
	if err := json.Unmarshal(data, &fromJSON); err == nil {
		return fromJSON
	}

	var fromLines []exportedAccount
	for _, line := range strings.Split(string(data), "\n") {
		var name, key string
		switch {
		case strings.Contains(line, "|"):
			name, key, _ = strings.Cut(line, "|")
		case strings.Contains(line, ","):
			name, key, _ = strings.Cut(line, ",")
		default:
			continue
		}

		key = strings.TrimSpace(key)
		if len(key) < minImportKeyLength {
			continue
		}
		fromLines = append(fromLines, exportedAccount{Name: strings.TrimSpace(name), Key: key})
	}

	return fromLines
}

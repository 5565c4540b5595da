package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlvx/limitwatch/internal/application"
	"github.com/mlvx/limitwatch/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

// Render produces the account list with active and cooldown badges.
func Render(statuses []application.Status, opts RenderOptions) (string, error) {
	return renderView(statuses, opts, newStyles()), nil
}

func renderView(statuses []application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("limitwatch accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(statuses))),
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No accounts stored."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, renderAccount(status, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(status application.Status, opts RenderOptions, s styles) string {
	title := s.account.Render(fmt.Sprintf("%s (%s)", displayName(status.Account.Name), status.Account.ID))
	if badges := renderBadges(status, opts.Now, s); badges != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badges)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		s.key.Render("  "+status.Account.MaskedKey()),
	)
}

func renderBadges(status application.Status, now time.Time, s styles) string {
	badges := make([]string, 0, 2)
	if status.Active {
		badges = append(badges, s.active.Render("[active]"))
	}
	if remaining := status.Account.RemainingCooldown(now); remaining > 0 {
		badges = append(badges, s.cooldown.Render(fmt.Sprintf("[cooling %s]", domain.FormatRemaining(remaining))))
	}

	return strings.Join(badges, " ")
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "unnamed"
	}

	return name
}

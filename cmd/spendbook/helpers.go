package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mhellwig/spendbook/internal/app"
	"github.com/mhellwig/spendbook/internal/domain"
	"github.com/mhellwig/spendbook/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// openApp builds the application context and loads both stores.
func openApp() (*app.App, error) {
	a, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := a.Load(); err != nil {
		return nil, err
	}
	return a, nil
}

// confirm prompts on stdout and reads a yes/no answer from stdin.
// Anything but "y"/"yes" counts as no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// confirmOverLimit implements the soft limit gate: the evaluation only
// computes, the user decides whether to proceed.
func confirmOverLimit(category *domain.Category, report service.LimitReport) bool {
	if report.WithinLimit {
		return true
	}
	fmt.Println(warnStyle.Render(fmt.Sprintf(
		"Limit of category %q exceeded this month by "+domain.AmountPattern+".",
		category.Name, report.Overage.InexactFloat64())))
	return confirm("Record the expense anyway?")
}

// swatch renders a colored block for the category color.
func swatch(c domain.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
}

// categoryLabel renders the category name in its font color.
func categoryLabel(c *domain.Category) string {
	if c == nil {
		return dimStyle.Render("(none)")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.FontColor.Hex())).Render(c.Name)
}

func formatAmount(d decimal.Decimal) string {
	return fmt.Sprintf(domain.AmountPattern, d.InexactFloat64())
}

// parseDateFlag accepts an ISO calendar date, defaulting to today when
// empty.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return domain.DateOf(time.Now()), nil
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

func parseTimeFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.TimeLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return &t, nil
}

// parseAmountFlag rejects malformed and negative amounts at the boundary,
// before anything reaches the store.
func parseAmountFlag(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

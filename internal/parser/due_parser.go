package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	absoluteDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRe     = regexp.MustCompile(`^(\d+)\s*(hour|hours|day|days|week|weeks)$`)
)

// ParseDueDate parses due date input from the CLI.
// Supported forms:
//   - "today", "tomorrow"
//   - dd/mm/yyyy (e.g. "15/12/2026")
//   - relative: "3 days", "24 hours", "2 weeks"
func ParseDueDate(input string) (*time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, nil
	}

	now := time.Now()
	switch input {
	case "today":
		due := endOfDay(now)
		return &due, nil
	case "tomorrow":
		due := endOfDay(now.AddDate(0, 0, 1))
		return &due, nil
	}

	if m := absoluteDateRe.FindStringSubmatch(input); m != nil {
		return parseAbsolute(m)
	}
	if m := relativeRe.FindStringSubmatch(input); m != nil {
		return parseRelative(m, now)
	}

	return nil, fmt.Errorf("invalid due date %q. Use: today, tomorrow, dd/mm/yyyy, X days, X hours, or X weeks", input)
}

func parseAbsolute(m []string) (*time.Time, error) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	due := time.Date(year, time.Month(month), day, 23, 59, 59, 0, time.Local)
	// Round-trip check catches 31/02 and friends.
	if due.Day() != day || due.Month() != time.Month(month) || due.Year() != year {
		return nil, fmt.Errorf("invalid calendar date %02d/%02d/%d", day, month, year)
	}
	return &due, nil
}

func parseRelative(m []string, now time.Time) (*time.Time, error) {
	amount, err := strconv.Atoi(m[1])
	if err != nil || amount < 1 {
		return nil, fmt.Errorf("invalid amount %q", m[1])
	}

	switch m[2] {
	case "hour", "hours":
		due := now.Add(time.Duration(amount) * time.Hour)
		return &due, nil
	case "day", "days":
		due := endOfDay(now.AddDate(0, 0, amount))
		return &due, nil
	default: // weeks
		due := endOfDay(now.AddDate(0, 0, amount*7))
		return &due, nil
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// FormatDueDate renders a due date relative to today for list output.
func FormatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	days := int(dueDay.Sub(today).Hours() / 24)

	dateStr := due.Format("02/01/2006")
	switch {
	case days < 0:
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	case days == 0:
		return fmt.Sprintf("due today (%s)", dateStr)
	case days == 1:
		return fmt.Sprintf("due tomorrow (%s)", dateStr)
	case days <= 7:
		return fmt.Sprintf("due in %d days (%s)", days, dateStr)
	default:
		return fmt.Sprintf("due %s", dateStr)
	}
}

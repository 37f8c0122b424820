package parser

import (
	"testing"
	"time"
)

func TestParseDueDateKeywords(t *testing.T) {
	now := time.Now()

	due, err := ParseDueDate("today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if due.Day() != now.Day() || due.Hour() != 23 || due.Minute() != 59 {
		t.Errorf("today should resolve to end of today, got %s", due)
	}

	due, err = ParseDueDate("Tomorrow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDay := now.AddDate(0, 0, 1)
	if due.Day() != wantDay.Day() || due.Hour() != 23 {
		t.Errorf("tomorrow should resolve to end of the next day, got %s", due)
	}
}

func TestParseDueDateAbsolute(t *testing.T) {
	due, err := ParseDueDate("15/12/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if due.Day() != 15 || due.Month() != time.December || due.Year() != 2026 {
		t.Errorf("got %s, want 15 December 2026", due)
	}
	if due.Hour() != 23 || due.Minute() != 59 {
		t.Errorf("absolute dates should land at end of day, got %s", due)
	}

	if _, err := ParseDueDate("31/02/2026"); err == nil {
		t.Error("31 February should be rejected")
	}
	if _, err := ParseDueDate("00/01/2026"); err == nil {
		t.Error("day zero should be rejected")
	}
}

func TestParseDueDateRelative(t *testing.T) {
	now := time.Now()

	due, err := ParseDueDate("3 days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := now.AddDate(0, 0, 3)
	if due.Day() != want.Day() || due.Hour() != 23 {
		t.Errorf("3 days: got %s", due)
	}

	due, err = ParseDueDate("2 weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = now.AddDate(0, 0, 14)
	if due.Day() != want.Day() {
		t.Errorf("2 weeks: got %s", due)
	}

	due, err = ParseDueDate("24 hours")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := due.Sub(now)
	if diff < 23*time.Hour+59*time.Minute || diff > 24*time.Hour+time.Minute {
		t.Errorf("24 hours: got offset %s", diff)
	}
}

func TestParseDueDateEmptyAndInvalid(t *testing.T) {
	due, err := ParseDueDate("")
	if err != nil || due != nil {
		t.Errorf("empty input means no due date, got %v, %v", due, err)
	}

	for _, input := range []string{"someday", "12-05-2026", "days 3", "0 days"} {
		if _, err := ParseDueDate(input); err == nil {
			t.Errorf("%q should be rejected", input)
		}
	}
}

func TestFormatDueDate(t *testing.T) {
	if got := FormatDueDate(nil); got != "" {
		t.Errorf("nil due date should render empty, got %q", got)
	}

	now := time.Now()
	cases := []struct {
		days int
		want string
	}{
		{-2, "OVERDUE"},
		{0, "due today"},
		{1, "due tomorrow"},
		{3, "due in 3 days"},
	}
	for _, tc := range cases {
		due := now.AddDate(0, 0, tc.days)
		got := FormatDueDate(&due)
		if len(got) < len(tc.want) || got[:len(tc.want)] != tc.want {
			t.Errorf("%d days out: got %q, want prefix %q", tc.days, got, tc.want)
		}
	}
}

package dateutil

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, time.March, 15, 14, 30, 45, 123, time.UTC)
	got := StartOfDay(input)
	want := date(2025, time.March, 15)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestIsWeekdayIsWeekend(t *testing.T) {
	tests := []struct {
		date    time.Time
		weekday bool
	}{
		{date(2025, time.January, 6), true},  // Monday
		{date(2025, time.January, 10), true}, // Friday
		{date(2025, time.January, 4), false}, // Saturday
		{date(2025, time.January, 5), false}, // Sunday
	}

	for _, tt := range tests {
		if got := IsWeekday(tt.date); got != tt.weekday {
			t.Errorf("IsWeekday(%s) = %v, want %v", FormatDateString(tt.date), got, tt.weekday)
		}
		if got := IsWeekend(tt.date); got == tt.weekday {
			t.Errorf("IsWeekend(%s) = %v, want %v", FormatDateString(tt.date), got, !tt.weekday)
		}
	}
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC)
	if !IsSameDay(a, b) {
		t.Error("IsSameDay = false for the same calendar day")
	}
	if IsSameDay(a, b.AddDate(0, 0, 1)) {
		t.Error("IsSameDay = true across days")
	}
}

func TestFormatting(t *testing.T) {
	d := date(2025, time.September, 5)

	if got := FormatDateString(d); got != "2025-09-05" {
		t.Errorf("FormatDateString = %q, want 2025-09-05", got)
	}
	if got := FormatChineseDate(d); got != "2025年9月5日" {
		t.Errorf("FormatChineseDate = %q, want 2025年9月5日", got)
	}
	if got := FormatChineseWeek(d); got != "星期五" {
		t.Errorf("FormatChineseWeek = %q, want 星期五", got)
	}
	if got := FormatChineseWeek(date(2025, time.September, 7)); got != "星期日" {
		t.Errorf("FormatChineseWeek = %q, want 星期日", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-01-29")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if !got.Equal(date(2025, time.January, 29)) {
		t.Errorf("ParseDate = %v, want 2025-01-29", got)
	}

	for _, bad := range []string{"", "2025-1-29", "29/01/2025", "2025-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestGenerateDateRange(t *testing.T) {
	got := GenerateDateRange(date(2025, time.January, 30), date(2025, time.February, 2))
	if len(got) != 4 {
		t.Fatalf("range has %d days, want 4", len(got))
	}
	if !got[0].Equal(date(2025, time.January, 30)) || !got[3].Equal(date(2025, time.February, 2)) {
		t.Errorf("range runs %v..%v, want 2025-01-30..2025-02-02", got[0], got[3])
	}

	single := GenerateDateRange(date(2025, time.January, 1), date(2025, time.January, 1))
	if len(single) != 1 {
		t.Errorf("single-day range has %d days, want 1", len(single))
	}

	if got := GenerateDateRange(date(2025, time.January, 2), date(2025, time.January, 1)); len(got) != 0 {
		t.Errorf("inverted range has %d days, want 0", len(got))
	}
}

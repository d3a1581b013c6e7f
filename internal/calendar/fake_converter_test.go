package calendar

import (
	"fmt"
	"time"

	"github.com/Tairraos/sino-calendar-mcp/internal/lunar"
)

// fakeConverter is a deterministic stand-in for the conversion service.
// Dates without an explicit entry resolve to an ordinary mid-year lunar
// date that matches no festival.
type fakeConverter struct {
	lunarDates map[string]lunar.Date // keyed YYYY-MM-DD
	terms      map[string]string     // keyed YYYY-MM-DD
	leapMonths map[int]int
	fail       bool
}

func (f *fakeConverter) ToLunar(date time.Time) (lunar.Date, error) {
	if f.fail {
		return lunar.Date{}, fmt.Errorf("conversion unavailable")
	}
	if d, ok := f.lunarDates[date.Format("2006-01-02")]; ok {
		return d, nil
	}
	return lunar.Date{
		Year:           date.Year(),
		Month:          6,
		Day:            10,
		YearInGanZhi:   "甲子",
		MonthInChinese: "六",
		DayInChinese:   "初十",
	}, nil
}

func (f *fakeConverter) TermOfDay(date time.Time) (string, error) {
	if f.fail {
		return "", fmt.Errorf("conversion unavailable")
	}
	return f.terms[date.Format("2006-01-02")], nil
}

func (f *fakeConverter) LeapMonthOfYear(lunarYear int) (int, error) {
	if f.fail {
		return 0, fmt.Errorf("conversion unavailable")
	}
	return f.leapMonths[lunarYear], nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

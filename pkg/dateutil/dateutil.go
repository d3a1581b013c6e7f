package dateutil

import (
	"fmt"
	"time"
)

var chineseWeekdays = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDateString formats date as YYYY-MM-DD
func FormatDateString(date time.Time) string {
	return date.Format("2006-01-02")
}

// FormatChineseDate formats date in Chinese, e.g. 2025年9月5日
func FormatChineseDate(date time.Time) string {
	return fmt.Sprintf("%d年%d月%d日", date.Year(), int(date.Month()), date.Day())
}

// FormatChineseWeek formats the weekday in Chinese, e.g. 星期五
func FormatChineseWeek(date time.Time) string {
	return chineseWeekdays[int(date.Weekday())]
}

// ParseDate parses a strict YYYY-MM-DD date string
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GenerateDateRange returns every day from start to end inclusive
func GenerateDateRange(start, end time.Time) []time.Time {
	start = StartOfDay(start)
	end = StartOfDay(end)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

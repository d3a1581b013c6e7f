package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Supported year window for all operations.
const (
	MinYear = 1900
	MaxYear = 2100
)

// MaxRangeDays is the largest allowed span for range queries, inclusive.
const MaxRangeDays = 366

var (
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	lunarTextPattern = regexp.MustCompile(`农历(\d{4})年(闰?)([正一二三四五六七八九十冬腊]+)月([初一二三四五六七八九十廿]+)`)
)

// ValidateDateString checks a YYYY-MM-DD string: shape, field ranges, the
// supported year window, and that the date actually exists on the calendar.
func ValidateDateString(dateStr string) error {
	if strings.TrimSpace(dateStr) == "" {
		return &ValidationError{Message: "日期不能为空"}
	}
	if !datePattern.MatchString(dateStr) {
		return &ValidationError{Message: "日期格式无效，请使用YYYY-MM-DD格式，如：2025-01-01"}
	}

	parts := strings.Split(dateStr, "-")
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	if year < MinYear || year > MaxYear {
		return &ValidationError{Message: fmt.Sprintf("年份必须在%d-%d之间", MinYear, MaxYear)}
	}
	if month < 1 || month > 12 {
		return &ValidationError{Message: "月份必须在1-12之间"}
	}
	if day < 1 || day > 31 {
		return &ValidationError{Message: "日期必须在1-31之间"}
	}

	// time.Date normalizes overflow, so a round trip detects dates that do
	// not exist, e.g. 2025-02-30
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return &DateParseError{Value: dateStr}
	}

	return nil
}

// ValidateDateRange checks both endpoints, their order, and the span limit
func ValidateDateRange(startStr, endStr string) error {
	if err := ValidateDateString(startStr); err != nil {
		return err
	}
	if err := ValidateDateString(endStr); err != nil {
		return err
	}

	start, _ := time.Parse("2006-01-02", startStr)
	end, _ := time.Parse("2006-01-02", endStr)
	return validateRangeSpan(start, end)
}

// validateRangeSpan enforces ordering and the 366-day cap on parsed dates
func validateRangeSpan(start, end time.Time) error {
	if start.After(end) {
		return &DateRangeError{Message: "开始日期不能晚于结束日期"}
	}
	if int(end.Sub(start).Hours()/24) > MaxRangeDays {
		return &DateRangeError{Message: fmt.Sprintf("查询范围不能超过%d天", MaxRangeDays)}
	}
	return nil
}

// ValidateYear checks the supported year window
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &ValidationError{Message: fmt.Sprintf("年份必须在%d-%d之间", MinYear, MaxYear)}
	}
	return nil
}

// ValidateMonth checks the month range
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return &ValidationError{Message: "月份必须在1-12之间"}
	}
	return nil
}

// ValidateLunarDateString checks the textual lunar date shape,
// e.g. 农历2025年正月初一
func ValidateLunarDateString(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Message: "农历日期不能为空"}
	}
	if !lunarTextPattern.MatchString(text) {
		return &ValidationError{Message: "农历日期格式无效，如：农历2025年正月初一"}
	}
	return nil
}

// ValidateReverseQueryType checks the reverse query kind
func ValidateReverseQueryType(queryType string) error {
	switch queryType {
	case "lunar", "festival", "solar_term":
		return nil
	}
	return &UnknownOperationError{Operation: queryType}
}

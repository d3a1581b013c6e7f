package calendar

import (
	"sort"
	"time"

	"github.com/Tairraos/sino-calendar-mcp/pkg/dateutil"
	"go.uber.org/zap"
)

// WorkdayResolver classifies days as working or rest days, applying the
// per-year holiday shift (调休) rule tables on top of the weekday/weekend
// default.
//
// When several rules for a year claim the same date, the first rule in
// table order wins. Existing callers rely on that, so the ambiguity is
// kept rather than reconciled.
type WorkdayResolver struct {
	rules  []AdjustmentRule
	logger *zap.Logger
}

// NewWorkdayResolver creates a WorkdayResolver over the built-in rule table
func NewWorkdayResolver(logger *zap.Logger) *WorkdayResolver {
	return NewWorkdayResolverWithRules(defaultAdjustmentRules, logger)
}

// NewWorkdayResolverWithRules creates a WorkdayResolver over the given
// rules, typically the built-in table extended by a loaded rules file
func NewWorkdayResolverWithRules(rules []AdjustmentRule, logger *zap.Logger) *WorkdayResolver {
	logger.Debug("Workday rule table initialized", zap.Int("rules", len(rules)))
	return &WorkdayResolver{rules: rules, logger: logger}
}

// yearRules returns the rules covering the given year, in table order
func (r *WorkdayResolver) yearRules(year int) []AdjustmentRule {
	var out []AdjustmentRule
	for _, rule := range r.rules {
		if rule.Year == year {
			out = append(out, rule)
		}
	}
	return out
}

// DayType resolves the working/rest classification of a day
func (r *WorkdayResolver) DayType(date time.Time) DayStatus {
	dateStr := dateutil.FormatDateString(date)
	rules := r.yearRules(date.Year())

	// statutory rest days first
	for _, rule := range rules {
		if containsDate(rule.HolidayDates, dateStr) {
			if dateutil.IsWeekday(date) {
				return DayStatus{Type: DayTypeRestday, Adjust: AdjustToRest}
			}
			return DayStatus{Type: DayTypeRestday}
		}
	}

	// shifted workdays second
	for _, rule := range rules {
		if containsDate(rule.WorkingDates, dateStr) {
			if dateutil.IsWeekend(date) {
				return DayStatus{Type: DayTypeWorkday, Adjust: AdjustToWork}
			}
			return DayStatus{Type: DayTypeWorkday}
		}
	}

	if dateutil.IsWeekend(date) {
		return DayStatus{Type: DayTypeRestday}
	}
	return DayStatus{Type: DayTypeWorkday}
}

func containsDate(dates []string, dateStr string) bool {
	for _, d := range dates {
		if d == dateStr {
			return true
		}
	}
	return false
}

// IsWorkday reports whether the date is a working day
func (r *WorkdayResolver) IsWorkday(date time.Time) bool {
	return r.DayType(date).Type == DayTypeWorkday
}

// IsHoliday reports whether the date is a rest day
func (r *WorkdayResolver) IsHoliday(date time.Time) bool {
	return r.DayType(date).Type == DayTypeRestday
}

// IsAdjusted reports whether the date is shifted in either direction
func (r *WorkdayResolver) IsAdjusted(date time.Time) bool {
	return r.DayType(date).Adjusted()
}

// YearHolidays returns every statutory rest date of the year, sorted
func (r *WorkdayResolver) YearHolidays(year int) []string {
	var holidays []string
	for _, rule := range r.yearRules(year) {
		holidays = append(holidays, rule.HolidayDates...)
	}
	sort.Strings(holidays)
	return holidays
}

// YearWorkingDays returns every shifted workday of the year, sorted
func (r *WorkdayResolver) YearWorkingDays(year int) []string {
	var days []string
	for _, rule := range r.yearRules(year) {
		days = append(days, rule.WorkingDates...)
	}
	sort.Strings(days)
	return days
}

// HolidayAdjustment returns the shift arrangement of the named holiday in
// the given year, nil when none exists
func (r *WorkdayResolver) HolidayAdjustment(year int, holiday string) *AdjustmentRule {
	for i := range r.rules {
		if r.rules[i].Year == year && r.rules[i].Holiday == holiday {
			return &r.rules[i]
		}
	}
	return nil
}

// CountWorkdays counts working days from start to end inclusive
func (r *WorkdayResolver) CountWorkdays(start, end time.Time) int {
	count := 0
	for _, d := range dateutil.GenerateDateRange(start, end) {
		if r.IsWorkday(d) {
			count++
		}
	}
	return count
}

// CountHolidays counts rest days from start to end inclusive
func (r *WorkdayResolver) CountHolidays(start, end time.Time) int {
	count := 0
	for _, d := range dateutil.GenerateDateRange(start, end) {
		if r.IsHoliday(d) {
			count++
		}
	}
	return count
}

// NextWorkday steps forward one day at a time until a working day is
// found. The loop has no bound; a rule table marking every future day a
// rest day would spin forever.
func (r *WorkdayResolver) NextWorkday(date time.Time) time.Time {
	next := date.AddDate(0, 0, 1)
	for !r.IsWorkday(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PreviousWorkday steps backward one day at a time until a working day is
// found
func (r *WorkdayResolver) PreviousWorkday(date time.Time) time.Time {
	prev := date.AddDate(0, 0, -1)
	for !r.IsWorkday(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}

package calendar

import (
	"fmt"
	"time"

	"github.com/Tairraos/sino-calendar-mcp/internal/lunar"
	"go.uber.org/zap"
)

// FestivalResolver matches dates against the festival rule table.
//
// Precedence is a fixed cascade: solar-fixed, lunar-fixed (with the New
// Year's Eve special case first), western-fixed, then the computed western
// holidays. The first match wins and evaluation stops.
type FestivalResolver struct {
	conv   lunar.Converter
	logger *zap.Logger
	rules  []Festival
}

// NewFestivalResolver creates a FestivalResolver over the static rule table
func NewFestivalResolver(conv lunar.Converter, logger *zap.Logger) *FestivalResolver {
	return &FestivalResolver{
		conv:   conv,
		logger: logger,
		rules:  festivals,
	}
}

// Resolve returns the festival falling on the given date, or "" when none.
// It never fails; lunar conversion problems degrade to skipping the lunar
// tier.
func (r *FestivalResolver) Resolve(date time.Time) string {
	if name := r.solarFestival(date); name != "" {
		return name
	}
	if name := r.lunarFestival(date); name != "" {
		return name
	}
	return r.westernFestival(date)
}

// solarFestival looks up a fixed Gregorian festival by MM-DD
func (r *FestivalResolver) solarFestival(date time.Time) string {
	key := fmt.Sprintf("%02d-%02d", int(date.Month()), date.Day())
	for _, f := range r.rules {
		if f.Type == FestivalSolar && f.IsFixed && f.Date == key {
			return f.Name
		}
	}
	return ""
}

// lunarFestival looks up a fixed lunar festival by the lunar MM-DD,
// checking the New Year's Eve special case first
func (r *FestivalResolver) lunarFestival(date time.Time) string {
	ld, err := r.conv.ToLunar(date)
	if err != nil {
		r.logger.Warn("Lunar conversion failed, skipping lunar festivals",
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err))
		return ""
	}

	if r.isNewYearEve(date, ld) {
		return "除夕"
	}

	// fixed lunar festivals fall in regular months only; a leap month
	// repeats the month number but not its festivals
	if ld.IsLeapMonth {
		return ""
	}

	key := fmt.Sprintf("%02d-%02d", ld.Month, ld.Day)
	for _, f := range r.rules {
		if f.Type == FestivalLunar && f.IsFixed && f.Date == key {
			return f.Name
		}
	}
	return ""
}

// isNewYearEve reports whether the date is the last day of the lunar year.
// A date in lunar month 12 is the Eve iff the following calendar day is
// lunar 01-01, which handles both 29- and 30-day twelfth months.
func (r *FestivalResolver) isNewYearEve(date time.Time, ld lunar.Date) bool {
	if ld.Month != 12 {
		return false
	}

	next, err := r.conv.ToLunar(date.AddDate(0, 0, 1))
	if err != nil {
		r.logger.Warn("Lunar conversion failed for next day, skipping Eve check",
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err))
		return false
	}
	return next.Month == 1 && next.Day == 1
}

// westernFestival checks fixed western festivals by MM-DD, then the
// computed ones in a fixed order
func (r *FestivalResolver) westernFestival(date time.Time) string {
	key := fmt.Sprintf("%02d-%02d", int(date.Month()), date.Day())
	for _, f := range r.rules {
		if f.Type == FestivalWestern && f.IsFixed && f.Date == key {
			return f.Name
		}
	}
	return r.computedWesternFestival(date)
}

func (r *FestivalResolver) computedWesternFestival(date time.Time) string {
	year, month, day := date.Year(), int(date.Month()), date.Day()

	if em, ed := easter(year); month == em && day == ed {
		return "复活节"
	}

	// 母亲节: second Sunday of May
	if month == 5 && day == nthWeekdayOfMonth(year, 5, time.Sunday, 2) {
		return "母亲节"
	}

	// 父亲节: third Sunday of June
	if month == 6 && day == nthWeekdayOfMonth(year, 6, time.Sunday, 3) {
		return "父亲节"
	}

	// 感恩节: fourth Thursday of November
	if month == 11 && day == nthWeekdayOfMonth(year, 11, time.Thursday, 4) {
		return "感恩节"
	}

	return ""
}

// easter computes the Gregorian Easter date by the anonymous computus
func easter(year int) (month, day int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = (h+l-7*m+114)%31 + 1
	return month, day
}

// nthWeekdayOfMonth returns the day of month of the nth given weekday
func nthWeekdayOfMonth(year, month int, weekday time.Weekday, nth int) int {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	firstTarget := 1 + (int(weekday)-int(firstDay.Weekday())+7)%7
	return firstTarget + (nth-1)*7
}

// Festivals returns the full festival rule table
func (r *FestivalResolver) Festivals() []Festival {
	return r.rules
}

// FestivalsByType returns every rule of the given category
func (r *FestivalResolver) FestivalsByType(t FestivalType) []Festival {
	var out []Festival
	for _, f := range r.rules {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// FestivalsByDate returns the rule entries for the festival falling on the
// given date, empty when the date carries no festival
func (r *FestivalResolver) FestivalsByDate(date time.Time) []Festival {
	name := r.Resolve(date)
	if name == "" {
		return nil
	}

	var out []Festival
	for _, f := range r.rules {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

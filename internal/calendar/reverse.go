package calendar

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Tairraos/sino-calendar-mcp/internal/lunar"
	"go.uber.org/zap"
)

var lunarMonthNames = map[string]int{
	"正": 1, "二": 2, "三": 3, "四": 4, "五": 5, "六": 6,
	"七": 7, "八": 8, "九": 9, "十": 10, "冬": 11, "腊": 12,
}

var lunarDayNames = map[string]int{
	"初一": 1, "初二": 2, "初三": 3, "初四": 4, "初五": 5,
	"初六": 6, "初七": 7, "初八": 8, "初九": 9, "初十": 10,
	"十一": 11, "十二": 12, "十三": 13, "十四": 14, "十五": 15,
	"十六": 16, "十七": 17, "十八": 18, "十九": 19, "二十": 20,
	"廿一": 21, "廿二": 22, "廿三": 23, "廿四": 24, "廿五": 25,
	"廿六": 26, "廿七": 27, "廿八": 28, "廿九": 29, "三十": 30,
}

// ReverseQueryEngine inverts the forward resolvers by exhaustive search:
// given a lunar date, festival, or solar term it scans candidate years day
// by day for matching Gregorian dates. Cost is O(days-in-year) per year
// searched; the year list is the caller's responsibility to keep small.
type ReverseQueryEngine struct {
	agg      *Aggregator
	festival *FestivalResolver
	terms    *SolarTermResolver
	conv     lunar.Converter
	logger   *zap.Logger
}

// NewReverseQueryEngine creates a ReverseQueryEngine over the aggregator's
// resolvers
func NewReverseQueryEngine(agg *Aggregator, conv lunar.Converter, logger *zap.Logger) *ReverseQueryEngine {
	return &ReverseQueryEngine{
		agg:      agg,
		festival: agg.festival,
		terms:    agg.terms,
		conv:     conv,
		logger:   logger,
	}
}

// ParseLunarText parses a textual lunar date such as 农历2025年正月初一 or
// 农历2020年闰四月初六. Nil on any non-match, never an error.
func ParseLunarText(text string) *LunarQueryComponents {
	m := lunarTextPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	month, ok := lunarMonthNames[m[3]]
	if !ok {
		return nil
	}
	day, ok := lunarDayNames[m[4]]
	if !ok {
		return nil
	}

	return &LunarQueryComponents{
		Year:   year,
		Month:  month,
		Day:    day,
		IsLeap: m[2] == "闰",
	}
}

// FindMatchesForLunar enumerates every valid day of searchYear and keeps
// the ones whose lunar month, day, and leap flag match the query. Returned
// as YYYY-MM-DD strings in calendar order. Conversion failures on a
// candidate day skip that day only.
func (e *ReverseQueryEngine) FindMatchesForLunar(lunarMonth, lunarDay, searchYear int, isLeap bool) []string {
	// a leap-month query can only match when one of the two lunar years
	// overlapping the Gregorian search year has that leap month
	if isLeap && !e.leapMonthInYear(lunarMonth, searchYear) {
		return nil
	}

	var matches []string

	for month := 1; month <= 12; month++ {
		for day := 1; day <= 31; day++ {
			date := time.Date(searchYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			// time.Date normalizes invalid combinations, e.g. Feb 30
			if date.Year() != searchYear || int(date.Month()) != month || date.Day() != day {
				continue
			}

			ld, err := e.conv.ToLunar(date)
			if err != nil {
				e.logger.Debug("Skipping candidate day, lunar conversion failed",
					zap.String("date", date.Format("2006-01-02")),
					zap.Error(err))
				continue
			}

			if ld.Month == lunarMonth && ld.Day == lunarDay && ld.IsLeapMonth == isLeap {
				matches = append(matches, date.Format("2006-01-02"))
			}
		}
	}

	return matches
}

// leapMonthInYear reports whether the queried leap month occurs in either
// lunar year overlapping the Gregorian search year. Lookup failures fall
// back to letting the scan decide.
func (e *ReverseQueryEngine) leapMonthInYear(lunarMonth, searchYear int) bool {
	for _, lunarYear := range []int{searchYear - 1, searchYear} {
		leap, err := e.conv.LeapMonthOfYear(lunarYear)
		if err != nil {
			e.logger.Debug("Leap month lookup failed, scanning anyway",
				zap.Int("lunarYear", lunarYear),
				zap.Error(err))
			return true
		}
		if leap == lunarMonth {
			return true
		}
	}
	return false
}

// QueryLunarDate resolves a textual lunar date to its Gregorian matches
// across the given years. Unparsable text or an empty year list yields an
// empty result, not an error.
func (e *ReverseQueryEngine) QueryLunarDate(text string, years []int) []DateRecord {
	components := ParseLunarText(text)
	if components == nil {
		return nil
	}

	var results []DateRecord
	for _, year := range years {
		for _, match := range e.FindMatchesForLunar(components.Month, components.Day, year, components.IsLeap) {
			date, err := time.Parse("2006-01-02", match)
			if err != nil {
				continue
			}
			results = append(results, e.agg.Compose(date))
		}
	}

	return sortByDate(results)
}

// QueryFestival finds every date across the given years whose festival
// name and the query contain each other in either direction. The fuzzy
// bidirectional match is deliberately permissive and can over-match on
// short queries.
func (e *ReverseQueryEngine) QueryFestival(name string, years []int) []DateRecord {
	if name == "" {
		return nil
	}

	var results []DateRecord
	for _, year := range years {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				if date.Year() != year || int(date.Month()) != month || date.Day() != day {
					continue
				}

				festival := e.festival.Resolve(date)
				if festival == "" {
					continue
				}
				if strings.Contains(festival, name) || strings.Contains(name, festival) {
					results = append(results, e.agg.Compose(date))
				}
			}
		}
	}

	return sortByDate(results)
}

// QuerySolarTerm finds the named solar term across the given years. An
// unknown name short-circuits to an empty result without searching.
func (e *ReverseQueryEngine) QuerySolarTerm(name string, years []int) []DateRecord {
	if e.terms.TermByName(name) == nil {
		return nil
	}

	var results []DateRecord
	for _, year := range years {
		for _, td := range e.terms.YearTerms(year) {
			if td.Name == name {
				results = append(results, e.agg.Compose(td.Date))
			}
		}
	}

	return sortByDate(results)
}

// QueryByDateRange expands the range and keeps the dates matching the
// category: rest_days, work_days, festivals, or solar_terms. An
// unrecognized category yields an empty result, not an error; an invalid
// range fails eagerly.
func (e *ReverseQueryEngine) QueryByDateRange(start, end time.Time, category string) ([]DateRecord, error) {
	records, err := e.agg.RangeInfo(start, end)
	if err != nil {
		return nil, err
	}

	var results []DateRecord
	for _, rec := range records {
		switch category {
		case "rest_days":
			if isRestDay(rec) {
				results = append(results, rec)
			}
		case "work_days":
			if isWorkDay(rec) {
				results = append(results, rec)
			}
		case "festivals":
			if rec.Festival != "" {
				results = append(results, rec)
			}
		case "solar_terms":
			if rec.SolarTerm != "" {
				results = append(results, rec)
			}
		}
	}

	return results, nil
}

// isRestDay holds for rest days unless the shift marker turned the day
// into a workday
func isRestDay(rec DateRecord) bool {
	return rec.DayType == string(DayTypeRestday) && rec.Adjust != AdjustToWork
}

// isWorkDay holds for plain workdays and for days shift-marked into
// workdays; the shift marker wins over the base label
func isWorkDay(rec DateRecord) bool {
	return rec.DayType == string(DayTypeWorkday) || rec.Adjust == AdjustToWork
}

func sortByDate(records []DateRecord) []DateRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time.Before(records[j].Time)
	})
	return records
}

package calendar

import (
	"time"

	"github.com/Tairraos/sino-calendar-mcp/internal/lunar"
	"github.com/Tairraos/sino-calendar-mcp/pkg/dateutil"
	"go.uber.org/zap"
)

// Aggregator composes the three resolvers plus base formatting into one
// per-date record.
//
// Compose never fails: each field is resolved independently and a failure
// in one degrades that field to a safe default instead of propagating. The
// range operations validate eagerly and do fail, before any expansion
// work starts.
type Aggregator struct {
	conv     lunar.Converter
	festival *FestivalResolver
	terms    *SolarTermResolver
	workday  *WorkdayResolver
	logger   *zap.Logger
}

// NewAggregator creates an Aggregator over the given resolvers
func NewAggregator(conv lunar.Converter, festival *FestivalResolver, terms *SolarTermResolver, workday *WorkdayResolver, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		conv:     conv,
		festival: festival,
		terms:    terms,
		workday:  workday,
		logger:   logger,
	}
}

// Compose builds the full DateRecord for a date. Lunar failures degrade to
// the sentinel label, festival and term failures to empty fields, so one
// broken collaborator never takes down the whole record.
func (a *Aggregator) Compose(date time.Time) DateRecord {
	record := DateRecord{
		Date:    dateutil.FormatChineseDate(date),
		Week:    dateutil.FormatChineseWeek(date),
		Time:    dateutil.StartOfDay(date),
		ISODate: dateutil.FormatDateString(date),
	}

	status := a.workday.DayType(date)
	record.DayType = string(status.Type)
	record.Adjust = status.Adjust
	if status.Adjusted() {
		record.Adjusted = AdjustedLabel
	}

	if ld, err := a.conv.ToLunar(date); err != nil {
		a.logger.Warn("Lunar conversion failed, using sentinel label",
			zap.String("date", record.ISODate),
			zap.Error(err))
		record.LunarDate = LunarFailedLabel
	} else {
		record.LunarDate = ld.Label()
	}

	record.Festival = a.festival.Resolve(date)
	record.SolarTerm = a.terms.TermOfDay(date)

	return record
}

// Statistics extends Compose with boolean flags and year-level counts
func (a *Aggregator) Statistics(date time.Time) DateStatistics {
	record := a.Compose(date)
	year := date.Year()

	isLeap := false
	if ld, err := a.conv.ToLunar(date); err == nil {
		isLeap = ld.IsLeapMonth
	}

	return DateStatistics{
		DateRecord: record,
		Statistics: Statistics{
			IsWorkday:            a.workday.IsWorkday(date),
			IsHoliday:            a.workday.IsHoliday(date),
			IsAdjusted:           a.workday.IsAdjusted(date),
			IsWeekend:            dateutil.IsWeekend(date),
			IsSolarTerm:          a.terms.IsTerm(date),
			IsLeapMonth:          isLeap,
			YearHolidaysCount:    len(a.workday.YearHolidays(year)),
			YearWorkingDaysCount: len(a.workday.YearWorkingDays(year)),
		},
	}
}

// RangeInfo composes every day from start to end inclusive. The range is
// validated before any expansion: inverted or over-366-day ranges fail
// with a DateRangeError.
func (a *Aggregator) RangeInfo(start, end time.Time) ([]DateRecord, error) {
	if err := validateRangeSpan(dateutil.StartOfDay(start), dateutil.StartOfDay(end)); err != nil {
		return nil, err
	}

	dates := dateutil.GenerateDateRange(start, end)
	records := make([]DateRecord, 0, len(dates))
	for _, d := range dates {
		records = append(records, a.Compose(d))
	}
	return records, nil
}

// Surrounding returns the center date's record plus the noteworthy records
// (festival, solar term, or shift marker) within ±days of it
func (a *Aggregator) Surrounding(center time.Time, days int) (*SurroundingInfo, error) {
	records, err := a.RangeInfo(center.AddDate(0, 0, -days), center.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	var noteworthy []DateRecord
	for _, rec := range records {
		if rec.Festival != "" || rec.SolarTerm != "" || rec.Adjusted != "" {
			noteworthy = append(noteworthy, rec)
		}
	}

	return &SurroundingInfo{
		CenterDate:       a.Compose(center),
		SurroundingDates: noteworthy,
		TotalDays:        len(records),
	}, nil
}

// MonthFestivals lists every festival date of the given month
func (a *Aggregator) MonthFestivals(year int, month time.Month) []MonthFestival {
	var out []MonthFestival
	days := dateutil.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if name := a.festival.Resolve(date); name != "" {
			out = append(out, MonthFestival{
				Date:     dateutil.FormatChineseDate(date),
				Festival: name,
			})
		}
	}
	return out
}

// YearSolarTerms lists every solar term of the year in chronological order
func (a *Aggregator) YearSolarTerms(year int) []NamedDate {
	terms := a.terms.YearTerms(year)
	out := make([]NamedDate, 0, len(terms))
	for _, td := range terms {
		out = append(out, NamedDate{
			Name: td.Name,
			Date: dateutil.FormatChineseDate(td.Date),
		})
	}
	return out
}

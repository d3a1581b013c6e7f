package calendar

import (
	"time"

	"github.com/Tairraos/sino-calendar-mcp/internal/lunar"
	"github.com/Tairraos/sino-calendar-mcp/pkg/dateutil"
	"go.uber.org/zap"
)

// SolarTermResolver answers solar term (节气) questions by delegating the
// per-day lookup to the conversion service and scanning whole years day by
// day for enumeration. The scan is brute force but bounded at 366 days.
type SolarTermResolver struct {
	conv   lunar.Converter
	logger *zap.Logger
}

// NewSolarTermResolver creates a SolarTermResolver
func NewSolarTermResolver(conv lunar.Converter, logger *zap.Logger) *SolarTermResolver {
	return &SolarTermResolver{conv: conv, logger: logger}
}

// TermOfDay returns the solar term falling on the given day, or ""
func (r *SolarTermResolver) TermOfDay(date time.Time) string {
	term, err := r.conv.TermOfDay(date)
	if err != nil {
		r.logger.Warn("Solar term lookup failed",
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err))
		return ""
	}
	return term
}

// IsTerm reports whether the given day is a solar term boundary
func (r *SolarTermResolver) IsTerm(date time.Time) bool {
	return r.TermOfDay(date) != ""
}

// YearTerms returns every solar term of the given year in chronological
// order. The day-by-day scan keeps the result sorted without an explicit
// sort pass.
func (r *SolarTermResolver) YearTerms(year int) []TermDate {
	var terms []TermDate
	for month := time.January; month <= time.December; month++ {
		days := dateutil.DaysInMonth(year, month)
		for day := 1; day <= days; day++ {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if term := r.TermOfDay(date); term != "" {
				terms = append(terms, TermDate{Name: term, Date: date})
			}
		}
	}
	return terms
}

// NextTerm returns the first solar term strictly after the given date,
// rolling into the next year when the current year has none left. Nil when
// both years come up empty.
func (r *SolarTermResolver) NextTerm(date time.Time) *TermDate {
	for _, td := range r.YearTerms(date.Year()) {
		if td.Date.After(date) {
			t := td
			return &t
		}
	}

	next := r.YearTerms(date.Year() + 1)
	if len(next) == 0 {
		return nil
	}
	t := next[0]
	return &t
}

// PreviousTerm returns the last solar term strictly before the given date,
// rolling into the previous year on a miss. Nil when both years are empty.
func (r *SolarTermResolver) PreviousTerm(date time.Time) *TermDate {
	terms := r.YearTerms(date.Year())
	for i := len(terms) - 1; i >= 0; i-- {
		if terms[i].Date.Before(date) {
			t := terms[i]
			return &t
		}
	}

	prev := r.YearTerms(date.Year() - 1)
	if len(prev) == 0 {
		return nil
	}
	t := prev[len(prev)-1]
	return &t
}

// Terms returns the 24 solar term definitions
func (r *SolarTermResolver) Terms() []SolarTerm {
	return solarTerms
}

// TermByName returns the definition of the named solar term, nil when the
// name is not one of the 24
func (r *SolarTermResolver) TermByName(name string) *SolarTerm {
	for i := range solarTerms {
		if solarTerms[i].Name == name {
			return &solarTerms[i]
		}
	}
	return nil
}

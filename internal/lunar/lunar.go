package lunar

import (
	"fmt"
	"time"

	lunargo "github.com/6tail/lunar-go/calendar"
)

// Date is the lunar view of a single Gregorian day.
type Date struct {
	Year           int // lunar year number
	Month          int // 1-12
	Day            int // 1-30
	IsLeapMonth    bool
	YearInGanZhi   string // sexagenary year label, e.g. 乙巳
	MonthInChinese string // month label without the leap marker, e.g. 正
	DayInChinese   string // day label, e.g. 初一
}

// Label renders the full Chinese lunar date, e.g. 壬辰年闰四月初六.
func (d Date) Label() string {
	month := d.MonthInChinese
	if d.IsLeapMonth {
		month = "闰" + month
	}
	return d.YearInGanZhi + "年" + month + "月" + d.DayInChinese
}

// Converter is the calendar conversion service the resolvers depend on.
// The production implementation delegates to the lunar-go library; tests
// substitute their own.
type Converter interface {
	// ToLunar converts a Gregorian date to its lunar representation.
	ToLunar(date time.Time) (Date, error)

	// TermOfDay returns the solar term (jieqi) falling on the given day,
	// or the empty string when the day is not a term boundary.
	TermOfDay(date time.Time) (string, error)

	// LeapMonthOfYear returns the leap month number of the given lunar
	// year, or 0 when the year has no leap month.
	LeapMonthOfYear(lunarYear int) (int, error)
}

type converter struct{}

// NewConverter returns the lunar-go backed Converter.
func NewConverter() Converter {
	return converter{}
}

func (converter) ToLunar(date time.Time) (d Date, err error) {
	// the library panics on dates outside its supported range
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lunar conversion failed for %s: %v", date.Format("2006-01-02"), r)
		}
	}()

	l := lunargo.NewSolarFromDate(date).GetLunar()

	// lunar-go reports leap months as negative month numbers
	month := l.GetMonth()
	isLeap := month < 0
	if isLeap {
		month = -month
	}

	return Date{
		Year:           l.GetYear(),
		Month:          month,
		Day:            l.GetDay(),
		IsLeapMonth:    isLeap,
		YearInGanZhi:   l.GetYearInGanZhi(),
		MonthInChinese: l.GetMonthInChinese(),
		DayInChinese:   l.GetDayInChinese(),
	}, nil
}

func (converter) TermOfDay(date time.Time) (term string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("solar term lookup failed for %s: %v", date.Format("2006-01-02"), r)
		}
	}()

	return lunargo.NewSolarFromDate(date).GetLunar().GetJieQi(), nil
}

func (converter) LeapMonthOfYear(lunarYear int) (month int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("leap month lookup failed for year %d: %v", lunarYear, r)
		}
	}()

	for e := lunargo.NewLunarYear(lunarYear).GetMonths().Front(); e != nil; e = e.Next() {
		m := e.Value.(*lunargo.LunarMonth)
		if m.IsLeap() {
			// leap months carry a negative month number
			month = m.GetMonth()
			if month < 0 {
				month = -month
			}
			return month, nil
		}
	}
	return 0, nil
}

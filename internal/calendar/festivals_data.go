package calendar

// Formula tags for western festivals without a fixed MM-DD date.
const (
	dateEaster       = "easter"
	dateMothersDay   = "05-second-sunday"
	dateFathersDay   = "06-third-sunday"
	dateThanksgiving = "11-fourth-thursday"
)

// festivals is the static festival rule table. Order within a tier does not
// matter; precedence between tiers is encoded in FestivalResolver.Resolve.
var festivals = []Festival{
	// 公历节日
	{Name: "元旦", Type: FestivalSolar, Date: "01-01", IsFixed: true},
	{Name: "妇女节", Type: FestivalSolar, Date: "03-08", IsFixed: true},
	{Name: "植树节", Type: FestivalSolar, Date: "03-12", IsFixed: true},
	{Name: "劳动节", Type: FestivalSolar, Date: "05-01", IsFixed: true},
	{Name: "青年节", Type: FestivalSolar, Date: "05-04", IsFixed: true},
	{Name: "儿童节", Type: FestivalSolar, Date: "06-01", IsFixed: true},
	{Name: "建党节", Type: FestivalSolar, Date: "07-01", IsFixed: true},
	{Name: "建军节", Type: FestivalSolar, Date: "08-01", IsFixed: true},
	{Name: "教师节", Type: FestivalSolar, Date: "09-10", IsFixed: true},
	{Name: "国庆节", Type: FestivalSolar, Date: "10-01", IsFixed: true},

	// 农历节日
	{Name: "春节", Type: FestivalLunar, Date: "01-01", IsFixed: true},
	{Name: "元宵节", Type: FestivalLunar, Date: "01-15", IsFixed: true},
	{Name: "龙抬头", Type: FestivalLunar, Date: "02-02", IsFixed: true},
	{Name: "上巳节", Type: FestivalLunar, Date: "03-03", IsFixed: true},
	{Name: "寒食节", Type: FestivalLunar, Date: "清明前一日", IsFixed: false},
	{Name: "端午节", Type: FestivalLunar, Date: "05-05", IsFixed: true},
	{Name: "七夕节", Type: FestivalLunar, Date: "07-07", IsFixed: true},
	{Name: "中元节", Type: FestivalLunar, Date: "07-15", IsFixed: true},
	{Name: "中秋节", Type: FestivalLunar, Date: "08-15", IsFixed: true},
	{Name: "重阳节", Type: FestivalLunar, Date: "09-09", IsFixed: true},
	{Name: "寒衣节", Type: FestivalLunar, Date: "10-01", IsFixed: true},
	{Name: "下元节", Type: FestivalLunar, Date: "10-15", IsFixed: true},
	{Name: "腊八节", Type: FestivalLunar, Date: "12-08", IsFixed: true},
	{Name: "小年", Type: FestivalLunar, Date: "12-23", IsFixed: true},
	{Name: "除夕", Type: FestivalLunar, Date: "12-30", IsFixed: false}, // 平年廿九，闰年三十

	// 西方节日
	{Name: "情人节", Type: FestivalWestern, Date: "02-14", IsFixed: true},
	{Name: "愚人节", Type: FestivalWestern, Date: "04-01", IsFixed: true},
	{Name: "复活节", Type: FestivalWestern, Date: dateEaster, IsFixed: false},
	{Name: "母亲节", Type: FestivalWestern, Date: dateMothersDay, IsFixed: false},
	{Name: "父亲节", Type: FestivalWestern, Date: dateFathersDay, IsFixed: false},
	{Name: "万圣节", Type: FestivalWestern, Date: "10-31", IsFixed: true},
	{Name: "感恩节", Type: FestivalWestern, Date: dateThanksgiving, IsFixed: false},
	{Name: "圣诞节", Type: FestivalWestern, Date: "12-25", IsFixed: true},
}

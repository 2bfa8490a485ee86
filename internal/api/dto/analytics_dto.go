package dto

// AnalyticsDTO 互动分析结果：按小时与按星期两组分桶，空桶省略
type AnalyticsDTO struct {
	Hourly []HourlyBucketDTO `json:"hourly"`
	Daily  []DailyBucketDTO  `json:"daily"`
}

type HourlyBucketDTO struct {
	Hour              int     `json:"hour"`
	AvgViews          float64 `json:"avgViews"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
	Count             int     `json:"count"`
}

type DailyBucketDTO struct {
	DayOfWeek         int     `json:"dayOfWeek"`
	AvgViews          float64 `json:"avgViews"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
	Count             int     `json:"count"`
}

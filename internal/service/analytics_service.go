package service

import (
	"context"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
)

type AnalyticsService interface {
	GetEngagementAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error)
}

type analyticsServiceImpl struct {
	postRepo mongo.PostRepo
}

func NewAnalyticsService(postRepo mongo.PostRepo) AnalyticsService {
	return &analyticsServiceImpl{
		postRepo: postRepo,
	}
}

type bucketAcc struct {
	views float64
	rate  float64
	count int
}

// GetEngagementAnalytics 对已发布帖子按小时 (0-23) 与星期 (0=周日..6=周六) 分桶，
// 求 views 与互动率的算术平均。空桶省略；小时桶升序，星期桶按出现顺序。
func (s *analyticsServiceImpl) GetEngagementAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error) {
	posts, err := s.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	hourly := make(map[int]*bucketAcc)
	daily := make(map[int]*bucketAcc)
	var dayOrder []int

	for _, post := range posts {
		if post.PublishedTime == nil {
			continue
		}

		hour := post.PublishedTime.Hour()
		day := int(post.PublishedTime.Weekday())

		if hourly[hour] == nil {
			hourly[hour] = &bucketAcc{}
		}
		hourly[hour].views += float64(post.EngagementMetrics.Views)
		hourly[hour].rate += post.EngagementMetrics.EngagementRate
		hourly[hour].count++

		if daily[day] == nil {
			daily[day] = &bucketAcc{}
			dayOrder = append(dayOrder, day)
		}
		daily[day].views += float64(post.EngagementMetrics.Views)
		daily[day].rate += post.EngagementMetrics.EngagementRate
		daily[day].count++
	}

	out := &dto.AnalyticsDTO{
		Hourly: make([]dto.HourlyBucketDTO, 0, len(hourly)),
		Daily:  make([]dto.DailyBucketDTO, 0, len(daily)),
	}

	for hour := 0; hour < 24; hour++ {
		acc, ok := hourly[hour]
		if !ok {
			continue
		}
		out.Hourly = append(out.Hourly, dto.HourlyBucketDTO{
			Hour:              hour,
			AvgViews:          acc.views / float64(acc.count),
			AvgEngagementRate: acc.rate / float64(acc.count),
			Count:             acc.count,
		})
	}

	for _, day := range dayOrder {
		acc := daily[day]
		out.Daily = append(out.Daily, dto.DailyBucketDTO{
			DayOfWeek:         day,
			AvgViews:          acc.views / float64(acc.count),
			AvgEngagementRate: acc.rate / float64(acc.count),
			Count:             acc.count,
		})
	}

	return out, nil
}

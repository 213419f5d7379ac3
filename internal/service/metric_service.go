package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
	"Milestone/internal/pkg/consts"
	"Milestone/internal/pkg/redis"
	"Milestone/internal/pkg/stats"
	"Milestone/internal/pkg/util"
	"Milestone/internal/repository"
)

type MetricService interface {
	Upsert(ctx context.Context, userID uint64, in *dto.MetricUpsertDTO) (*dto.MetricDTO, error)
	GetToday(ctx context.Context, userID uint64) (*dto.MetricDTO, error)
	GetRange(ctx context.Context, userID uint64, start, end string) ([]dto.MetricDTO, error)
	GetSummary(ctx context.Context, userID uint64, timeframe string) (*dto.SummaryDTO, error)
}

type metricServiceImpl struct {
	metricRepo repository.MetricRepo
	goalRepo   repository.GoalRepo
}

func NewMetricService(metricRepo repository.MetricRepo, goalRepo repository.GoalRepo) MetricService {
	return &metricServiceImpl{
		metricRepo: metricRepo,
		goalRepo:   goalRepo,
	}
}

func (s *metricServiceImpl) Upsert(ctx context.Context, userID uint64, in *dto.MetricUpsertDTO) (*dto.MetricDTO, error) {
	date, err := util.ParseDate(in.MetricDate)
	if err != nil {
		return nil, ErrDateInvalid
	}

	metric := &model.DailyMetric{
		UserID:               userID,
		MetricDate:           date,
		CallsMade:            intOrZero(in.CallsMade),
		ContactsReached:      intOrZero(in.ContactsReached),
		AppointmentsSet:      intOrZero(in.AppointmentsSet),
		AppointmentsAttended: intOrZero(in.AppointmentsAttended),
		ListingPresentations: intOrZero(in.ListingPresentations),
		ListingsTaken:        intOrZero(in.ListingsTaken),
		BuyersSigned:         intOrZero(in.BuyersSigned),
		ActiveListings:       intOrZero(in.ActiveListings),
		PendingContracts:     intOrZero(in.PendingContracts),
		ClosedDeals:          intOrZero(in.ClosedDeals),
		VolumeClosed:         floatOrZero(in.VolumeClosed),
	}

	if err = s.metricRepo.SaveOrUpdate(ctx, metric); err != nil {
		return nil, err
	}

	invalidateUserCaches(ctx, userID)
	return toMetricDTO(metric), nil
}

func (s *metricServiceImpl) GetToday(ctx context.Context, userID uint64) (*dto.MetricDTO, error) {
	today := getMidnight(time.Now())
	metric, err := s.metricRepo.GetByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		// 当天尚未填报，返回零值行方便前端直接渲染
		metric = &model.DailyMetric{UserID: userID, MetricDate: today}
	}
	return toMetricDTO(metric), nil
}

func (s *metricServiceImpl) GetRange(ctx context.Context, userID uint64, start, end string) ([]dto.MetricDTO, error) {
	startDate, err := util.ParseDate(start)
	if err != nil {
		return nil, ErrDateInvalid
	}
	endDate, err := util.ParseDate(end)
	if err != nil {
		return nil, ErrDateInvalid
	}
	if endDate.Before(startDate) {
		return nil, ErrParamInvalid
	}

	metrics, err := s.metricRepo.GetRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MetricDTO, 0, len(metrics))
	for i := range metrics {
		out = append(out, *toMetricDTO(&metrics[i]))
	}
	return out, nil
}

// GetSummary 区间汇总：聚合计数 + 漏斗 + 年度目标进度。
// 结果按自然日缓存，午夜前 5 分钟过期。
func (s *metricServiceImpl) GetSummary(ctx context.Context, userID uint64, timeframe string) (*dto.SummaryDTO, error) {
	start, end, err := summaryRange(timeframe, time.Now())
	if err != nil {
		return nil, err
	}

	key := consts.MetricsSummaryKey + timeframe + ":" + strconv.FormatUint(userID, 10)
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var summary dto.SummaryDTO
		if err = json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	metrics, err := s.metricRepo.GetRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	totals := stats.Aggregate(metrics)
	funnel := stats.Funnel(totals)

	summary := &dto.SummaryDTO{
		Timeframe: timeframe,
		StartDate: util.FormatDate(start),
		EndDate:   util.FormatDate(end),
	}
	_ = copier.Copy(&summary.Totals, &totals)
	_ = copier.Copy(&summary.Funnel, &funnel)

	if progress := s.goalProgress(ctx, userID, totals); progress != nil {
		summary.GoalProgress = progress
	}

	cacheUntilMidnight(ctx, key, summary)
	return summary, nil
}

// goalProgress 汇总区间的成交数据对照当年目标；没设目标则省略该块
func (s *metricServiceImpl) goalProgress(ctx context.Context, userID uint64, totals stats.Totals) *dto.GoalProgressDTO {
	year := time.Now().Year()
	goal, err := s.goalRepo.GetByYear(ctx, userID, year)
	if err != nil || goal == nil {
		return nil
	}

	return &dto.GoalProgressDTO{
		Year:           year,
		DealsNeeded:    goal.DealsNeeded,
		ClosedDeals:    totals.ClosedDeals,
		DealsProgress:  stats.Progress(float64(totals.ClosedDeals), float64(goal.DealsNeeded)),
		AnnualGoal:     goal.AnnualIncomeGoal,
		VolumeClosed:   totals.VolumeClosed,
		VolumeProgress: stats.Progress(totals.VolumeClosed, goal.AnnualIncomeGoal),
		DailyDealsPace: stats.DailyPace(goal.DealsNeeded),
	}
}

// summaryRange 汇总口径：week 为过去 7 天，month / year 为自然月 / 自然年
func summaryRange(timeframe string, now time.Time) (time.Time, time.Time, error) {
	today := getMidnight(now)
	switch timeframe {
	case consts.TimeframeWeek:
		return today.AddDate(0, 0, -7), today, nil
	case consts.TimeframeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, today, nil
	case consts.TimeframeYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return start, today, nil
	default:
		return time.Time{}, time.Time{}, ErrTimeframeInvalid
	}
}

func toMetricDTO(metric *model.DailyMetric) *dto.MetricDTO {
	out := &dto.MetricDTO{}
	_ = copier.Copy(out, metric)
	out.MetricDate = util.FormatDate(metric.MetricDate)
	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// cacheUntilMidnight 缓存到午夜前 5 分钟，跨天后口径变化自动失效
func cacheUntilMidnight(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := time.Until(midnight) - time.Minute*5
	if expiration < 0 {
		return
	}

	_ = redis.SetWithExpiration(ctx, key, string(payload), expiration)
}

// invalidateUserCaches 计数变更后清掉该用户的汇总与报表缓存
func invalidateUserCaches(ctx context.Context, userID uint64) {
	suffix := strconv.FormatUint(userID, 10)
	for _, tf := range []string{consts.TimeframeWeek, consts.TimeframeMonth, consts.TimeframeYear} {
		_ = redis.DeleteKey(ctx, consts.MetricsSummaryKey+tf+":"+suffix)
	}
	for _, tf := range []string{consts.TimeframeWeek, consts.TimeframeMonth} {
		_ = redis.DeleteKey(ctx, consts.ReportDataKey+tf+":"+suffix)
	}
}

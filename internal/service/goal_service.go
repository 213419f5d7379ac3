package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
	"Milestone/internal/pkg/stats"
	"Milestone/internal/repository"
)

type GoalService interface {
	Upsert(ctx context.Context, userID uint64, in *dto.GoalUpsertDTO) (*dto.GoalDTO, error)
	Get(ctx context.Context, userID uint64, year int) (*dto.GoalDTO, error)
	Progress(ctx context.Context, userID uint64) (*dto.GoalProgressDTO, error)
}

type goalServiceImpl struct {
	goalRepo   repository.GoalRepo
	metricRepo repository.MetricRepo
}

func NewGoalService(goalRepo repository.GoalRepo, metricRepo repository.MetricRepo) GoalService {
	return &goalServiceImpl{
		goalRepo:   goalRepo,
		metricRepo: metricRepo,
	}
}

// Upsert 保存年度目标，deals_needed 不信任前端、服务端重算
func (s *goalServiceImpl) Upsert(ctx context.Context, userID uint64, in *dto.GoalUpsertDTO) (*dto.GoalDTO, error) {
	goal := &model.Goal{
		UserID:                   userID,
		Year:                     in.Year,
		AnnualIncomeGoal:         in.AnnualIncomeGoal,
		AverageCommissionPerDeal: in.AverageCommissionPerDeal,
		DealsNeeded:              stats.DealsNeeded(in.AnnualIncomeGoal, in.AverageCommissionPerDeal),
	}

	if err := s.goalRepo.SaveOrUpdate(ctx, goal); err != nil {
		return nil, err
	}
	return toGoalDTO(goal), nil
}

func (s *goalServiceImpl) Get(ctx context.Context, userID uint64, year int) (*dto.GoalDTO, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	goal, err := s.goalRepo.GetByYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}
	return toGoalDTO(goal), nil
}

// Progress 当年成交数据对照年度目标，进度封顶 100
func (s *goalServiceImpl) Progress(ctx context.Context, userID uint64) (*dto.GoalProgressDTO, error) {
	now := time.Now()
	year := now.Year()

	goal, err := s.goalRepo.GetByYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	start := time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
	metrics, err := s.metricRepo.GetRange(ctx, userID, start, getMidnight(now))
	if err != nil {
		return nil, err
	}
	totals := stats.Aggregate(metrics)

	return &dto.GoalProgressDTO{
		Year:           year,
		DealsNeeded:    goal.DealsNeeded,
		ClosedDeals:    totals.ClosedDeals,
		DealsProgress:  stats.Progress(float64(totals.ClosedDeals), float64(goal.DealsNeeded)),
		AnnualGoal:     goal.AnnualIncomeGoal,
		VolumeClosed:   totals.VolumeClosed,
		VolumeProgress: stats.Progress(totals.VolumeClosed, goal.AnnualIncomeGoal),
		DailyDealsPace: stats.DailyPace(goal.DealsNeeded),
	}, nil
}

func toGoalDTO(goal *model.Goal) *dto.GoalDTO {
	out := &dto.GoalDTO{}
	_ = copier.Copy(out, goal)
	return out
}

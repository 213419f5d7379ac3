package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
	"Milestone/internal/pkg/stats"
	"Milestone/internal/pkg/util"
	"Milestone/internal/repository"
)

type TargetService interface {
	Upsert(ctx context.Context, userID uint64, in *dto.TargetUpsertDTO) (*dto.TargetDTO, error)
	Get(ctx context.Context, userID uint64) (*dto.TargetDTO, error)
	DailyProgress(ctx context.Context, userID uint64) (*dto.DailyProgressDTO, error)
}

type targetServiceImpl struct {
	targetRepo repository.TargetRepo
	goalRepo   repository.GoalRepo
	metricRepo repository.MetricRepo
}

func NewTargetService(targetRepo repository.TargetRepo, goalRepo repository.GoalRepo, metricRepo repository.MetricRepo) TargetService {
	return &targetServiceImpl{
		targetRepo: targetRepo,
		goalRepo:   goalRepo,
		metricRepo: metricRepo,
	}
}

func (s *targetServiceImpl) Upsert(ctx context.Context, userID uint64, in *dto.TargetUpsertDTO) (*dto.TargetDTO, error) {
	target := &model.DailyTarget{UserID: userID}
	_ = copier.Copy(target, in)

	if err := s.targetRepo.SaveOrUpdate(ctx, target); err != nil {
		return nil, err
	}
	return toTargetDTO(target), nil
}

// Get 未保存过目标时返回默认值，前端表单直接当初始值用
func (s *targetServiceImpl) Get(ctx context.Context, userID uint64) (*dto.TargetDTO, error) {
	target, err := s.targetRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		target = model.DefaultDailyTarget(userID)
	}
	return toTargetDTO(target), nil
}

// DailyProgress 今日各项活动对照目标的完成度。
// 显式目标行优先；没有时从年度目标按工作日折算。
func (s *targetServiceImpl) DailyProgress(ctx context.Context, userID uint64) (*dto.DailyProgressDTO, error) {
	today := getMidnight(time.Now())

	explicit, err := s.targetRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	annual, err := s.goalRepo.GetByYear(ctx, userID, today.Year())
	if err != nil {
		return nil, err
	}

	metric, err := s.metricRepo.GetByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		metric = &model.DailyMetric{UserID: userID, MetricDate: today}
	}

	source := stats.ResolveTargetSource(explicit, annual)
	targets := source.Targets()

	items := []dto.DailyProgressItemDTO{
		progressItem("calls_made", metric.CallsMade, targets.CallsMade),
		progressItem("contacts_reached", metric.ContactsReached, targets.ContactsReached),
		progressItem("appointments_set", metric.AppointmentsSet, targets.AppointmentsSet),
		progressItem("appointments_attended", metric.AppointmentsAttended, targets.AppointmentsAttended),
		progressItem("listing_presentations", metric.ListingPresentations, targets.ListingPresentations),
		progressItem("listings_taken", metric.ListingsTaken, targets.ListingsTaken),
		progressItem("buyers_signed", metric.BuyersSigned, targets.BuyersSigned),
		progressItem("closed_deals", metric.ClosedDeals, targets.ClosedDeals),
	}

	return &dto.DailyProgressDTO{
		Date:   util.FormatDate(today),
		Source: source.Source,
		Items:  items,
	}, nil
}

func progressItem(metric string, current, target int) dto.DailyProgressItemDTO {
	return dto.DailyProgressItemDTO{
		Metric:   metric,
		Current:  current,
		Target:   target,
		Progress: stats.Progress(float64(current), float64(target)),
	}
}

func toTargetDTO(target *model.DailyTarget) *dto.TargetDTO {
	out := &dto.TargetDTO{}
	_ = copier.Copy(out, target)
	return out
}

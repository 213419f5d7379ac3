package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Milestone/internal/model"
)

type MetricRepo interface {
	SaveOrUpdate(ctx context.Context, metric *model.DailyMetric) error
	GetByDate(ctx context.Context, userID uint64, date time.Time) (*model.DailyMetric, error)
	GetRange(ctx context.Context, userID uint64, start, end time.Time) ([]model.DailyMetric, error)
	AdjustCounters(ctx context.Context, userID uint64, adjustments []model.MetricAdjustment) error
}

type metricRepoImpl struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepo {
	return &metricRepoImpl{db: db}
}

// metricUpdateColumns 冲突时整行覆盖的计数列
var metricUpdateColumns = []string{
	"calls_made", "contacts_reached", "appointments_set", "appointments_attended",
	"listing_presentations", "listings_taken", "buyers_signed",
	"active_listings", "pending_contracts", "closed_deals", "volume_closed",
	"updated_at",
}

func (s *metricRepoImpl) SaveOrUpdate(ctx context.Context, metric *model.DailyMetric) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns(metricUpdateColumns),
	}).Create(metric).Error
}

func (s *metricRepoImpl) GetByDate(ctx context.Context, userID uint64, date time.Time) (*model.DailyMetric, error) {
	var metric model.DailyMetric
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND metric_date = ?", userID, date).
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

func (s *metricRepoImpl) GetRange(ctx context.Context, userID uint64, start, end time.Time) ([]model.DailyMetric, error) {
	metrics := make([]model.DailyMetric, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("metric_date >= ? AND metric_date <= ?", start, end).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}

// AdjustCounters 在单个事务里把成交增量写到对应日期的计数行上
func (s *metricRepoImpl) AdjustCounters(ctx context.Context, userID uint64, adjustments []model.MetricAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyAdjustments(tx, userID, adjustments)
	})
}

// applyAdjustments 供本仓储和联系人删除事务复用。
// 目标日期没有计数行时先建一行，回冲结果不允许为负。
func applyAdjustments(tx *gorm.DB, userID uint64, adjustments []model.MetricAdjustment) error {
	for _, adj := range adjustments {
		if adj.Delta.IsZero() {
			continue
		}

		var metric model.DailyMetric
		err := tx.Where("user_id = ? AND metric_date = ?", userID, adj.Date).First(&metric).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metric = model.DailyMetric{UserID: userID, MetricDate: adj.Date}
			if err = tx.Create(&metric).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		metric.BuyersSigned = clampZero(metric.BuyersSigned + adj.Delta.BuyersSigned)
		metric.ListingsTaken = clampZero(metric.ListingsTaken + adj.Delta.ListingsTaken)
		metric.ClosedDeals = clampZero(metric.ClosedDeals + adj.Delta.ClosedDeals)
		metric.VolumeClosed = metric.VolumeClosed + adj.Delta.VolumeClosed
		if metric.VolumeClosed < 0 {
			metric.VolumeClosed = 0
		}

		if err = tx.Model(&model.DailyMetric{}).Where("id = ?", metric.ID).
			Updates(map[string]any{
				"buyers_signed":  metric.BuyersSigned,
				"listings_taken": metric.ListingsTaken,
				"closed_deals":   metric.ClosedDeals,
				"volume_closed":  metric.VolumeClosed,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

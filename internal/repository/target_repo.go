package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Milestone/internal/model"
)

type TargetRepo interface {
	SaveOrUpdate(ctx context.Context, target *model.DailyTarget) error
	Get(ctx context.Context, userID uint64) (*model.DailyTarget, error)
}

type targetRepoImpl struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) TargetRepo {
	return &targetRepoImpl{db: db}
}

func (s *targetRepoImpl) SaveOrUpdate(ctx context.Context, target *model.DailyTarget) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"calls_made_target", "contacts_reached_target", "appointments_set_target",
			"appointments_attended_target", "listing_presentations_target",
			"listings_taken_target", "buyers_signed_target", "updated_at",
		}),
	}).Create(target).Error
}

func (s *targetRepoImpl) Get(ctx context.Context, userID uint64) (*model.DailyTarget, error) {
	var target model.DailyTarget
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &target, nil
}

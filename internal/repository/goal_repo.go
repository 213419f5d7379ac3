package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Milestone/internal/model"
)

type GoalRepo interface {
	SaveOrUpdate(ctx context.Context, goal *model.Goal) error
	GetByYear(ctx context.Context, userID uint64, year int) (*model.Goal, error)
}

type goalRepoImpl struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepo {
	return &goalRepoImpl{db: db}
}

func (s *goalRepoImpl) SaveOrUpdate(ctx context.Context, goal *model.Goal) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"annual_income_goal", "average_commission_per_deal", "deals_needed", "updated_at"}),
	}).Create(goal).Error
}

func (s *goalRepoImpl) GetByYear(ctx context.Context, userID uint64, year int) (*model.Goal, error) {
	var goal model.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

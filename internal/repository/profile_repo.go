package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Milestone/internal/model"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID uint64) (*model.Profile, error)
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepo {
	return &profileRepoImpl{db: db}
}

func (s *profileRepoImpl) GetByUserID(ctx context.Context, userID uint64) (*model.Profile, error) {
	var profile model.Profile
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

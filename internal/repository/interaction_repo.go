package repository

import (
	"context"

	"gorm.io/gorm"

	"Milestone/internal/model"
)

type InteractionRepo interface {
	Create(ctx context.Context, interaction *model.ContactInteraction) error
	ListByContact(ctx context.Context, userID, contactID uint64) ([]model.ContactInteraction, error)
}

type interactionRepoImpl struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepo {
	return &interactionRepoImpl{db: db}
}

func (s *interactionRepoImpl) Create(ctx context.Context, interaction *model.ContactInteraction) error {
	return s.db.WithContext(ctx).Create(interaction).Error
}

func (s *interactionRepoImpl) ListByContact(ctx context.Context, userID, contactID uint64) ([]model.ContactInteraction, error) {
	interactions := make([]model.ContactInteraction, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND contact_id = ?", userID, contactID).
		Order("created_at DESC").
		Find(&interactions)
	if result.Error != nil {
		return nil, result.Error
	}
	return interactions, nil
}

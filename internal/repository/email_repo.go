package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Milestone/internal/model"
)

type EmailRepo interface {
	SaveOrUpdatePreference(ctx context.Context, pref *model.EmailPreference) error
	GetPreference(ctx context.Context, userID uint64) (*model.EmailPreference, error)
	ListEnabled(ctx context.Context) ([]model.EmailPreference, error)
	ListEnabledByDay(ctx context.Context, weekday int) ([]model.EmailPreference, error)
	InsertLog(ctx context.Context, entry *model.EmailLog) error
	ListLogs(ctx context.Context, userID uint64, limit int) ([]model.EmailLog, error)
}

type emailRepoImpl struct {
	db *gorm.DB
}

func NewEmailRepository(db *gorm.DB) EmailRepo {
	return &emailRepoImpl{db: db}
}

func (s *emailRepoImpl) SaveOrUpdatePreference(ctx context.Context, pref *model.EmailPreference) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "weekly_report_enabled", "weekly_report_day", "updated_at"}),
	}).Create(pref).Error
}

func (s *emailRepoImpl) GetPreference(ctx context.Context, userID uint64) (*model.EmailPreference, error) {
	var pref model.EmailPreference
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

// ListEnabled 取所有开启了周报的订阅，手动批量发送用
func (s *emailRepoImpl) ListEnabled(ctx context.Context) ([]model.EmailPreference, error) {
	prefs := make([]model.EmailPreference, 0)
	result := s.db.WithContext(ctx).
		Where("weekly_report_enabled = ?", true).
		Find(&prefs)
	if result.Error != nil {
		return nil, result.Error
	}
	return prefs, nil
}

// ListEnabledByDay 取当天应收周报的所有订阅
func (s *emailRepoImpl) ListEnabledByDay(ctx context.Context, weekday int) ([]model.EmailPreference, error) {
	prefs := make([]model.EmailPreference, 0)
	result := s.db.WithContext(ctx).
		Where("weekly_report_enabled = ? AND weekly_report_day = ?", true, weekday).
		Find(&prefs)
	if result.Error != nil {
		return nil, result.Error
	}
	return prefs, nil
}

func (s *emailRepoImpl) InsertLog(ctx context.Context, entry *model.EmailLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *emailRepoImpl) ListLogs(ctx context.Context, userID uint64, limit int) ([]model.EmailLog, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	logs := make([]model.EmailLog, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Milestone/internal/model"
)

// ContactQuery 列表查询条件，零值字段不参与过滤
type ContactQuery struct {
	Keyword     string
	ContactType string
	Status      string
	Page        int
	PageSize    int
}

type ContactRepo interface {
	Create(ctx context.Context, contact *model.Contact) error
	BatchCreate(ctx context.Context, contacts []*model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	GetByID(ctx context.Context, userID, id uint64) (*model.Contact, error)
	List(ctx context.Context, userID uint64, query ContactQuery) ([]model.Contact, int64, error)
	DeleteWithReversal(ctx context.Context, contact *model.Contact, reversals []model.MetricAdjustment) error
}

type contactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepo {
	return &contactRepoImpl{db: db}
}

func (s *contactRepoImpl) Create(ctx context.Context, contact *model.Contact) error {
	return s.db.WithContext(ctx).Create(contact).Error
}

func (s *contactRepoImpl) BatchCreate(ctx context.Context, contacts []*model.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(contacts, 100).Error
}

// Update 整行覆盖，可选字段清空也要生效
func (s *contactRepoImpl) Update(ctx context.Context, contact *model.Contact) error {
	return s.db.WithContext(ctx).Save(contact).Error
}

func (s *contactRepoImpl) GetByID(ctx context.Context, userID, id uint64) (*model.Contact, error) {
	var contact model.Contact
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (s *contactRepoImpl) List(ctx context.Context, userID uint64, query ContactQuery) ([]model.Contact, int64, error) {
	db := s.db.WithContext(ctx).Model(&model.Contact{}).Where("user_id = ?", userID)

	if query.Keyword != "" {
		like := "%" + query.Keyword + "%"
		db = db.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ?",
			like, like, like, like)
	}
	if query.ContactType != "" {
		db = db.Where("contact_type = ?", query.ContactType)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.PageSize
	if size < 1 || size > 200 {
		size = 50
	}

	contacts := make([]model.Contact, 0)
	err := db.Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// DeleteWithReversal 删除联系人及其跟进记录，并在同一事务里
// 回冲它曾写进日计数的成交增量
func (s *contactRepoImpl) DeleteWithReversal(ctx context.Context, contact *model.Contact, reversals []model.MetricAdjustment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contact.ID).
			Delete(&model.ContactInteraction{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND id = ?", contact.UserID, contact.ID).
			Delete(&model.Contact{}).Error; err != nil {
			return err
		}

		return applyAdjustments(tx, contact.UserID, reversals)
	})
}

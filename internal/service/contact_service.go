package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	log "log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
	"Milestone/internal/pkg/util"
	"Milestone/internal/repository"
)

type ContactService interface {
	Create(ctx context.Context, userID uint64, in *dto.ContactUpsertDTO) (*dto.ContactDTO, error)
	Update(ctx context.Context, userID, id uint64, in *dto.ContactUpsertDTO) (*dto.ContactDTO, error)
	Get(ctx context.Context, userID, id uint64) (*dto.ContactDTO, error)
	List(ctx context.Context, userID uint64, query repository.ContactQuery) (*dto.PageDTO[dto.ContactDTO], error)
	Delete(ctx context.Context, userID, id uint64) error
	ImportCSV(ctx context.Context, userID uint64, r io.Reader) (*dto.ImportResultDTO, error)
	AddInteraction(ctx context.Context, userID, contactID uint64, in *dto.InteractionCreateDTO) (*dto.InteractionDTO, error)
	ListInteractions(ctx context.Context, userID, contactID uint64) ([]dto.InteractionDTO, error)
}

type contactServiceImpl struct {
	contactRepo     repository.ContactRepo
	interactionRepo repository.InteractionRepo
	metricRepo      repository.MetricRepo
}

func NewContactService(contactRepo repository.ContactRepo, interactionRepo repository.InteractionRepo, metricRepo repository.MetricRepo) ContactService {
	return &contactServiceImpl{
		contactRepo:     contactRepo,
		interactionRepo: interactionRepo,
		metricRepo:      metricRepo,
	}
}

func (s *contactServiceImpl) Create(ctx context.Context, userID uint64, in *dto.ContactUpsertDTO) (*dto.ContactDTO, error) {
	contact, err := buildContact(userID, in)
	if err != nil {
		return nil, err
	}

	if err = s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.applyContributions(ctx, contact)
	return toContactDTO(contact), nil
}

// Update 整行覆盖。成交字段的变动不追补计数：
// 计数只在建档/导入时写入，删除时按当前字段回冲，负数一律截到零。
func (s *contactServiceImpl) Update(ctx context.Context, userID, id uint64, in *dto.ContactUpsertDTO) (*dto.ContactDTO, error) {
	existing, err := s.contactRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrContactNotFound
	}

	contact, err := buildContact(userID, in)
	if err != nil {
		return nil, err
	}
	contact.ID = existing.ID
	contact.CreatedAt = existing.CreatedAt

	if err = s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return toContactDTO(contact), nil
}

func (s *contactServiceImpl) Get(ctx context.Context, userID, id uint64) (*dto.ContactDTO, error) {
	contact, err := s.contactRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return toContactDTO(contact), nil
}

func (s *contactServiceImpl) List(ctx context.Context, userID uint64, query repository.ContactQuery) (*dto.PageDTO[dto.ContactDTO], error) {
	contacts, total, err := s.contactRepo.List(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	list := make([]dto.ContactDTO, 0, len(contacts))
	for i := range contacts {
		list = append(list, *toContactDTO(&contacts[i]))
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.PageSize
	if size < 1 || size > 200 {
		size = 50
	}

	return &dto.PageDTO[dto.ContactDTO]{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

// Delete 删除联系人并在同一事务里回冲它的成交计数
func (s *contactServiceImpl) Delete(ctx context.Context, userID, id uint64) error {
	contact, err := s.contactRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}

	reversals := Contributions(contact)
	for i := range reversals {
		reversals[i].Delta = reversals[i].Delta.Negate()
	}

	if err = s.contactRepo.DeleteWithReversal(ctx, contact, reversals); err != nil {
		return err
	}

	if len(reversals) > 0 {
		invalidateUserCaches(ctx, userID)
	}
	return nil
}

// ImportCSV 逐行导入，失败行跳过继续，结果里带失败计数
func (s *contactServiceImpl) ImportCSV(ctx context.Context, userID uint64, r io.Reader) (*dto.ImportResultDTO, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrCSVInvalid
	}
	columns := normalizeHeader(header)

	result := &dto.ImportResultDTO{}
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("第 %d 行解析失败", line))
			continue
		}

		in, err := rowToContactDTO(columns, record)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("第 %d 行：%s", line, err.Error()))
			continue
		}

		contact, err := buildContact(userID, in)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("第 %d 行：%s", line, err.Error()))
			continue
		}

		if err = s.contactRepo.Create(ctx, contact); err != nil {
			log.Warn("csv import row insert failed", "line", line, "err", err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("第 %d 行写入失败", line))
			continue
		}

		s.applyContributions(ctx, contact)
		result.Imported++
	}

	return result, nil
}

func (s *contactServiceImpl) AddInteraction(ctx context.Context, userID, contactID uint64, in *dto.InteractionCreateDTO) (*dto.InteractionDTO, error) {
	contact, err := s.contactRepo.GetByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	interaction := &model.ContactInteraction{
		ContactID:       contactID,
		UserID:          userID,
		InteractionType: in.InteractionType,
		Subject:         in.Subject,
		Notes:           in.Notes,
	}
	if in.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *in.ScheduledAt)
		if err != nil {
			return nil, ErrDateInvalid
		}
		interaction.ScheduledAt = &t
	}
	if in.FollowUpDate != nil {
		t, err := util.ParseDate(*in.FollowUpDate)
		if err != nil {
			return nil, ErrDateInvalid
		}
		interaction.FollowUpDate = &t
	}

	if err = s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}
	return toInteractionDTO(interaction), nil
}

func (s *contactServiceImpl) ListInteractions(ctx context.Context, userID, contactID uint64) ([]dto.InteractionDTO, error) {
	contact, err := s.contactRepo.GetByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	interactions, err := s.interactionRepo.ListByContact(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InteractionDTO, 0, len(interactions))
	for i := range interactions {
		out = append(out, *toInteractionDTO(&interactions[i]))
	}
	return out, nil
}

// applyContributions 成交字段转成当日计数增量。
// 写入失败只记日志，不影响联系人本身的落库。
func (s *contactServiceImpl) applyContributions(ctx context.Context, contact *model.Contact) {
	adjustments := Contributions(contact)
	if len(adjustments) == 0 {
		return
	}
	if err := s.metricRepo.AdjustCounters(ctx, contact.UserID, adjustments); err != nil {
		log.Error("failed to apply contact metric contributions", "contact_id", contact.ID, "err", err)
		return
	}
	invalidateUserCaches(ctx, contact.UserID)
}

// Contributions 联系人成交字段对日计数的贡献：
// closed_date 当日 closed_deals+1、volume_closed+paid_income；
// contract_date 当日买方 buyers_signed+1、卖方 listings_taken+1。
// 两个日期各自落在自己的日子上。
func Contributions(contact *model.Contact) []model.MetricAdjustment {
	var out []model.MetricAdjustment

	if contact.ClosedDate != nil {
		delta := model.MetricDelta{ClosedDeals: 1}
		if contact.PaidIncome != nil {
			delta.VolumeClosed = *contact.PaidIncome
		}
		out = append(out, model.MetricAdjustment{Date: *contact.ClosedDate, Delta: delta})
	}

	if contact.ContractDate != nil {
		var delta model.MetricDelta
		switch contact.ContactType {
		case model.ContactTypeBuyer:
			delta.BuyersSigned = 1
		case model.ContactTypeSeller:
			delta.ListingsTaken = 1
		}
		if !delta.IsZero() {
			out = append(out, model.MetricAdjustment{Date: *contact.ContractDate, Delta: delta})
		}
	}

	return out
}

func buildContact(userID uint64, in *dto.ContactUpsertDTO) (*model.Contact, error) {
	contactType := in.ContactType
	if contactType == "" {
		contactType = model.ContactTypeBuyer
	}
	if !slices.Contains(model.ContactTypes, contactType) {
		return nil, ErrContactTypeInvalid
	}

	status := in.Status
	if status == "" {
		status = model.ContactStatusNew
	}
	if !slices.Contains(model.ContactStatuses, status) {
		return nil, ErrStatusInvalid
	}

	if in.LeadSource != nil && !slices.Contains(model.LeadSources, *in.LeadSource) {
		return nil, ErrLeadSourceInvalid
	}

	contact := &model.Contact{
		UserID:              userID,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Phone:               in.Phone,
		Address:             in.Address,
		City:                in.City,
		State:               in.State,
		ZipCode:             in.ZipCode,
		ContactType:         contactType,
		Status:              status,
		LeadSource:          in.LeadSource,
		Notes:               in.Notes,
		BudgetMin:           in.BudgetMin,
		BudgetMax:           in.BudgetMax,
		PreferredAreas:      in.PreferredAreas,
		Price:               in.Price,
		Fee:                 in.Fee,
		PaidIncome:          in.PaidIncome,
		EstimatedCommission: in.EstimatedCommission,
		DaysOnMarket:        in.DaysOnMarket,
	}

	var err error
	if contact.ContractDate, err = parseOptionalDate(in.ContractDate); err != nil {
		return nil, err
	}
	if contact.PendingDate, err = parseOptionalDate(in.PendingDate); err != nil {
		return nil, err
	}
	if contact.ClosedDate, err = parseOptionalDate(in.ClosedDate); err != nil {
		return nil, err
	}

	return contact, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := util.ParseDate(*s)
	if err != nil {
		return nil, ErrDateInvalid
	}
	return &t, nil
}

// normalizeHeader 列名统一成 snake_case，兼容导出模板里的标题风格
func normalizeHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		key = strings.ReplaceAll(key, " ", "_")
		columns[key] = i
	}
	return columns
}

func rowToContactDTO(columns map[string]int, record []string) (*dto.ContactUpsertDTO, error) {
	get := func(key string) string {
		idx, ok := columns[key]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	in := &dto.ContactUpsertDTO{
		FirstName:      get("first_name"),
		LastName:       get("last_name"),
		Email:          util.PtrString(get("email")),
		Phone:          util.PtrString(get("phone")),
		Address:        util.PtrString(get("address")),
		City:           util.PtrString(get("city")),
		State:          util.PtrString(get("state")),
		ZipCode:        util.PtrString(get("zip_code")),
		ContactType:    get("type"),
		Status:         get("status"),
		LeadSource:     util.PtrString(get("lead_source")),
		Notes:          util.PtrString(get("notes")),
		PreferredAreas: util.PtrString(get("preferred_areas")),
		ContractDate:   util.PtrString(get("contract_date")),
		PendingDate:    util.PtrString(get("pending_date")),
		ClosedDate:     util.PtrString(get("closed_date")),
	}
	if in.ContactType == "" {
		in.ContactType = get("contact_type")
	}
	if in.FirstName == "" || in.LastName == "" {
		return nil, ErrParamInvalid
	}

	var err error
	if in.BudgetMin, err = parseOptionalFloat(get("budget_min")); err != nil {
		return nil, err
	}
	if in.BudgetMax, err = parseOptionalFloat(get("budget_max")); err != nil {
		return nil, err
	}
	if in.Price, err = parseOptionalFloat(get("price")); err != nil {
		return nil, err
	}
	if in.Fee, err = parseOptionalFloat(get("fee")); err != nil {
		return nil, err
	}
	if in.PaidIncome, err = parseOptionalFloat(get("paid_income")); err != nil {
		return nil, err
	}
	if in.EstimatedCommission, err = parseOptionalFloat(get("estimated_commission")); err != nil {
		return nil, err
	}
	if raw := get("days_on_market"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrParamInvalid
		}
		in.DaysOnMarket = &days
	}

	return in, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil, ErrParamInvalid
	}
	return &v, nil
}

func toContactDTO(contact *model.Contact) *dto.ContactDTO {
	out := &dto.ContactDTO{}
	_ = copier.Copy(out, contact)
	return out
}

func toInteractionDTO(interaction *model.ContactInteraction) *dto.InteractionDTO {
	out := &dto.InteractionDTO{}
	_ = copier.Copy(out, interaction)
	return out
}

package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
	"Milestone/internal/pkg/mailer"
	"Milestone/internal/pkg/report"
	"Milestone/internal/repository"
)

// noMetricsMessage 写进投递审计的无数据原因，和历史数据保持同一措辞
const noMetricsMessage = "No metrics data available"

type EmailService interface {
	UpsertPreference(ctx context.Context, userID uint64, in *dto.EmailPreferenceDTO) (*dto.EmailPreferenceDTO, error)
	GetPreference(ctx context.Context, userID uint64) (*dto.EmailPreferenceDTO, error)
	ListLogs(ctx context.Context, userID uint64, limit int) ([]dto.EmailLogDTO, error)
	SendManual(ctx context.Context, in *dto.ReportEmailDTO) ([]dto.ReportEmailResultDTO, error)
	SendScheduled(ctx context.Context, weekday time.Weekday) ([]dto.ReportEmailResultDTO, error)
}

type emailServiceImpl struct {
	emailRepo     repository.EmailRepo
	profileRepo   repository.ProfileRepo
	reportService ReportService
	sender        mailer.Mailer
}

func NewEmailService(emailRepo repository.EmailRepo, profileRepo repository.ProfileRepo, reportService ReportService, sender mailer.Mailer) EmailService {
	return &emailServiceImpl{
		emailRepo:     emailRepo,
		profileRepo:   profileRepo,
		reportService: reportService,
		sender:        sender,
	}
}

func (s *emailServiceImpl) UpsertPreference(ctx context.Context, userID uint64, in *dto.EmailPreferenceDTO) (*dto.EmailPreferenceDTO, error) {
	pref := &model.EmailPreference{
		UserID:              userID,
		Email:               in.Email,
		WeeklyReportEnabled: in.WeeklyReportEnabled,
		WeeklyReportDay:     in.WeeklyReportDay,
	}
	if err := s.emailRepo.SaveOrUpdatePreference(ctx, pref); err != nil {
		return nil, err
	}
	return toPreferenceDTO(pref), nil
}

// GetPreference 没存过偏好时回落到个人资料里的邮箱，订阅默认关闭
func (s *emailServiceImpl) GetPreference(ctx context.Context, userID uint64) (*dto.EmailPreferenceDTO, error) {
	pref, err := s.emailRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref != nil {
		return toPreferenceDTO(pref), nil
	}

	out := &dto.EmailPreferenceDTO{}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.Email != nil {
		out.Email = *profile.Email
	}
	return out, nil
}

func (s *emailServiceImpl) ListLogs(ctx context.Context, userID uint64, limit int) ([]dto.EmailLogDTO, error) {
	logs, err := s.emailRepo.ListLogs(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmailLogDTO, 0, len(logs))
	for i := range logs {
		var item dto.EmailLogDTO
		_ = copier.Copy(&item, &logs[i])
		out = append(out, item)
	}
	return out, nil
}

// SendManual 手动触发。指定 user_id 时只发一人（偏好邮箱缺失时
// 回落到个人资料邮箱），否则对所有开启订阅的用户批量发送。
func (s *emailServiceImpl) SendManual(ctx context.Context, in *dto.ReportEmailDTO) ([]dto.ReportEmailResultDTO, error) {
	timeframe := in.Timeframe
	if timeframe == "" {
		timeframe = report.TimeframeWeek
	}

	if in.UserID != nil {
		email, err := s.resolveRecipient(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		result := s.sendOne(ctx, *in.UserID, email, timeframe, model.ReportTypeManual)
		return []dto.ReportEmailResultDTO{result}, nil
	}

	prefs, err := s.emailRepo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	return s.sendBatch(ctx, prefs, timeframe, model.ReportTypeManual), nil
}

// SendScheduled 定时触发，只发偏好星期等于当天的订阅，周报口径固定一周
func (s *emailServiceImpl) SendScheduled(ctx context.Context, weekday time.Weekday) ([]dto.ReportEmailResultDTO, error) {
	prefs, err := s.emailRepo.ListEnabledByDay(ctx, int(weekday))
	if err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		log.Info("no subscribers scheduled for weekly report", "weekday", int(weekday))
		return nil, nil
	}
	return s.sendBatch(ctx, prefs, report.TimeframeWeek, model.ReportTypeWeeklyScheduled), nil
}

// sendBatch 逐个收件人发送，单个失败不影响后续
func (s *emailServiceImpl) sendBatch(ctx context.Context, prefs []model.EmailPreference, timeframe, reportType string) []dto.ReportEmailResultDTO {
	results := make([]dto.ReportEmailResultDTO, 0, len(prefs))
	for _, pref := range prefs {
		results = append(results, s.sendOne(ctx, pref.UserID, pref.Email, timeframe, reportType))
	}
	return results
}

// sendOne 单个收件人的完整发送流程，每个终态都落一条投递审计
func (s *emailServiceImpl) sendOne(ctx context.Context, userID uint64, email, timeframe, reportType string) dto.ReportEmailResultDTO {
	result := dto.ReportEmailResultDTO{UserID: userID, Email: email}

	data, err := s.reportService.BuildData(ctx, userID, timeframe)
	if err != nil {
		message := err.Error()
		if err == ErrNoMetricsData {
			message = noMetricsMessage
		}
		log.Warn("skip report email", "user_id", userID, "reason", message)
		s.logDelivery(ctx, userID, email, reportType, model.EmailStatusFailed, message)
		result.Error = message
		return result
	}

	html, err := report.RenderHTML(*data)
	if err != nil {
		s.logDelivery(ctx, userID, email, reportType, model.EmailStatusFailed, err.Error())
		result.Error = err.Error()
		return result
	}

	sendResult, err := s.sender.SendWithRetry(ctx, email, data.Subject(), html)
	if sendResult != nil {
		result.Attempts = sendResult.Attempts
	}
	if err != nil {
		log.Error("report email delivery failed", "user_id", userID, "email", email, "err", err)
		s.logDelivery(ctx, userID, email, reportType, model.EmailStatusFailed, err.Error())
		result.Error = err.Error()
		return result
	}

	log.Info("report email delivered", "user_id", userID, "email", email, "attempts", result.Attempts)
	s.logDelivery(ctx, userID, email, reportType, model.EmailStatusSent, "")
	result.Success = true
	return result
}

// resolveRecipient 偏好邮箱优先，其次个人资料邮箱
func (s *emailServiceImpl) resolveRecipient(ctx context.Context, userID uint64) (string, error) {
	pref, err := s.emailRepo.GetPreference(ctx, userID)
	if err != nil {
		return "", err
	}
	if pref != nil && pref.Email != "" {
		return pref.Email, nil
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile != nil && profile.Email != nil && *profile.Email != "" {
		return *profile.Email, nil
	}
	return "", ErrNoRecipient
}

// logDelivery 审计写失败只记日志，不向上传播
func (s *emailServiceImpl) logDelivery(ctx context.Context, userID uint64, email, reportType, status, errorMessage string) {
	entry := &model.EmailLog{
		UserID:     userID,
		Email:      email,
		ReportType: reportType,
		Status:     status,
	}
	if errorMessage != "" {
		entry.ErrorMessage = &errorMessage
	}
	if err := s.emailRepo.InsertLog(ctx, entry); err != nil {
		log.Error("failed to insert email log", "user_id", userID, "err", err)
	}
}

func toPreferenceDTO(pref *model.EmailPreference) *dto.EmailPreferenceDTO {
	return &dto.EmailPreferenceDTO{
		Email:               pref.Email,
		WeeklyReportEnabled: pref.WeeklyReportEnabled,
		WeeklyReportDay:     pref.WeeklyReportDay,
	}
}

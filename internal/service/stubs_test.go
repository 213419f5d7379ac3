package service

import (
	"context"
	"errors"
	"time"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
	"Milestone/internal/pkg/mailer"
	"Milestone/internal/pkg/report"
	"Milestone/internal/repository"
)

// 本包测试共用的内存桩实现

type stubContactRepo struct {
	created  []*model.Contact
	contacts map[uint64]*model.Contact
	deleted  []uint64
}

func (s *stubContactRepo) Create(_ context.Context, contact *model.Contact) error {
	contact.ID = uint64(len(s.created) + 1)
	s.created = append(s.created, contact)
	return nil
}

func (s *stubContactRepo) BatchCreate(_ context.Context, contacts []*model.Contact) error {
	s.created = append(s.created, contacts...)
	return nil
}

func (s *stubContactRepo) Update(_ context.Context, _ *model.Contact) error { return nil }

func (s *stubContactRepo) GetByID(_ context.Context, userID, id uint64) (*model.Contact, error) {
	contact, ok := s.contacts[id]
	if !ok || contact.UserID != userID {
		return nil, nil
	}
	return contact, nil
}

func (s *stubContactRepo) List(_ context.Context, _ uint64, _ repository.ContactQuery) ([]model.Contact, int64, error) {
	return nil, 0, nil
}

func (s *stubContactRepo) DeleteWithReversal(_ context.Context, contact *model.Contact, _ []model.MetricAdjustment) error {
	s.deleted = append(s.deleted, contact.ID)
	return nil
}

type stubMetricRepo struct {
	adjustments []model.MetricAdjustment
}

func (s *stubMetricRepo) SaveOrUpdate(_ context.Context, _ *model.DailyMetric) error { return nil }

func (s *stubMetricRepo) GetByDate(_ context.Context, _ uint64, _ time.Time) (*model.DailyMetric, error) {
	return nil, nil
}

func (s *stubMetricRepo) GetRange(_ context.Context, _ uint64, _, _ time.Time) ([]model.DailyMetric, error) {
	return nil, nil
}

func (s *stubMetricRepo) AdjustCounters(_ context.Context, _ uint64, adjustments []model.MetricAdjustment) error {
	s.adjustments = append(s.adjustments, adjustments...)
	return nil
}

type stubEmailRepo struct {
	pref    *model.EmailPreference
	enabled []model.EmailPreference
	logs    []model.EmailLog
}

func (s *stubEmailRepo) SaveOrUpdatePreference(_ context.Context, pref *model.EmailPreference) error {
	s.pref = pref
	return nil
}

func (s *stubEmailRepo) GetPreference(_ context.Context, _ uint64) (*model.EmailPreference, error) {
	return s.pref, nil
}

func (s *stubEmailRepo) ListEnabled(_ context.Context) ([]model.EmailPreference, error) {
	return s.enabled, nil
}

func (s *stubEmailRepo) ListEnabledByDay(_ context.Context, weekday int) ([]model.EmailPreference, error) {
	out := make([]model.EmailPreference, 0)
	for _, pref := range s.enabled {
		if pref.WeeklyReportDay == weekday {
			out = append(out, pref)
		}
	}
	return out, nil
}

func (s *stubEmailRepo) InsertLog(_ context.Context, entry *model.EmailLog) error {
	s.logs = append(s.logs, *entry)
	return nil
}

func (s *stubEmailRepo) ListLogs(_ context.Context, _ uint64, _ int) ([]model.EmailLog, error) {
	return s.logs, nil
}

type stubProfileRepo struct {
	profile *model.Profile
}

func (s *stubProfileRepo) GetByUserID(_ context.Context, _ uint64) (*model.Profile, error) {
	return s.profile, nil
}

// stubReportService 按 user_id 决定返回数据还是无数据错误
type stubReportService struct {
	data        *report.Data
	emptyUserID uint64
}

func (s *stubReportService) BuildData(_ context.Context, userID uint64, timeframe string) (*report.Data, error) {
	if s.emptyUserID != 0 && userID == s.emptyUserID {
		return nil, ErrNoMetricsData
	}
	d := *s.data
	d.Timeframe = timeframe
	return &d, nil
}

func (s *stubReportService) GetData(_ context.Context, _ uint64, _ string) (*dto.ReportDataDTO, error) {
	return nil, nil
}

func (s *stubReportService) DownloadPDF(_ context.Context, _ uint64, _ string) ([]byte, string, string, error) {
	return nil, "", "", nil
}

var errStubSend = errors.New("resend 返回状态码 500")

type stubMailer struct {
	sent    []string
	failFor string
}

func (s *stubMailer) SendWithRetry(_ context.Context, to, _, _ string) (*mailer.Result, error) {
	if to == s.failFor {
		return &mailer.Result{Attempts: 3}, errStubSend
	}
	s.sent = append(s.sent, to)
	return &mailer.Result{MessageID: "msg_test", Attempts: 1}, nil
}

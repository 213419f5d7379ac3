package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
	"Milestone/internal/pkg/report"
	"Milestone/internal/pkg/stats"
)

func sampleReportData() *report.Data {
	return &report.Data{
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Timeframe: report.TimeframeWeek,
		Totals: stats.Totals{
			CallsMade:       120,
			ContactsReached: 36,
			AppointmentsSet: 9,
			ClosedDeals:     1,
			VolumeClosed:    450000,
		},
		ContactRate: 30,
		ApptRate:    25,
	}
}

func newEmailServiceForTest(emailRepo *stubEmailRepo, profileRepo *stubProfileRepo, reports *stubReportService, sender *stubMailer) EmailService {
	return NewEmailService(emailRepo, profileRepo, reports, sender)
}

func TestSendManualSingleRecipient(t *testing.T) {
	emailRepo := &stubEmailRepo{pref: &model.EmailPreference{UserID: 1, Email: "agent@example.com"}}
	sender := &stubMailer{}
	svc := newEmailServiceForTest(emailRepo, &stubProfileRepo{}, &stubReportService{data: sampleReportData()}, sender)

	userID := uint64(1)
	results, err := svc.SendManual(t.Context(), &dto.ReportEmailDTO{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Success)
	assert.Equal(t, "agent@example.com", results[0].Email)
	assert.Equal(t, 1, results[0].Attempts)
	assert.Equal(t, []string{"agent@example.com"}, sender.sent)

	require.Len(t, emailRepo.logs, 1)
	assert.Equal(t, model.EmailStatusSent, emailRepo.logs[0].Status)
	assert.Equal(t, model.ReportTypeManual, emailRepo.logs[0].ReportType)
}

func TestSendManualFallsBackToProfileEmail(t *testing.T) {
	email := "profile@example.com"
	profileRepo := &stubProfileRepo{profile: &model.Profile{UserID: 2, Email: &email}}
	sender := &stubMailer{}
	svc := newEmailServiceForTest(&stubEmailRepo{}, profileRepo, &stubReportService{data: sampleReportData()}, sender)

	userID := uint64(2)
	results, err := svc.SendManual(t.Context(), &dto.ReportEmailDTO{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "profile@example.com", results[0].Email)
	assert.True(t, results[0].Success)
}

func TestSendManualNoRecipient(t *testing.T) {
	svc := newEmailServiceForTest(&stubEmailRepo{}, &stubProfileRepo{}, &stubReportService{data: sampleReportData()}, &stubMailer{})

	userID := uint64(3)
	_, err := svc.SendManual(t.Context(), &dto.ReportEmailDTO{UserID: &userID})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestSendManualBatchIsolatesFailures(t *testing.T) {
	emailRepo := &stubEmailRepo{enabled: []model.EmailPreference{
		{UserID: 1, Email: "a@example.com", WeeklyReportEnabled: true},
		{UserID: 2, Email: "b@example.com", WeeklyReportEnabled: true},
		{UserID: 3, Email: "c@example.com", WeeklyReportEnabled: true},
	}}
	sender := &stubMailer{failFor: "b@example.com"}
	reports := &stubReportService{data: sampleReportData(), emptyUserID: 3}
	svc := newEmailServiceForTest(emailRepo, &stubProfileRepo{}, reports, sender)

	results, err := svc.SendManual(t.Context(), &dto.ReportEmailDTO{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)

	assert.False(t, results[1].Success)
	assert.Equal(t, 3, results[1].Attempts)
	assert.Contains(t, results[1].Error, "resend")

	// 区间无数据：不发送，失败原因用固定措辞
	assert.False(t, results[2].Success)
	assert.Equal(t, "No metrics data available", results[2].Error)
	assert.Equal(t, []string{"a@example.com"}, sender.sent)

	require.Len(t, emailRepo.logs, 3)
	assert.Equal(t, model.EmailStatusSent, emailRepo.logs[0].Status)
	assert.Equal(t, model.EmailStatusFailed, emailRepo.logs[1].Status)
	assert.Equal(t, model.EmailStatusFailed, emailRepo.logs[2].Status)
	require.NotNil(t, emailRepo.logs[2].ErrorMessage)
	assert.Equal(t, "No metrics data available", *emailRepo.logs[2].ErrorMessage)
}

func TestSendScheduledFiltersByWeekday(t *testing.T) {
	emailRepo := &stubEmailRepo{enabled: []model.EmailPreference{
		{UserID: 1, Email: "mon@example.com", WeeklyReportEnabled: true, WeeklyReportDay: 1},
		{UserID: 2, Email: "fri@example.com", WeeklyReportEnabled: true, WeeklyReportDay: 5},
	}}
	sender := &stubMailer{}
	svc := newEmailServiceForTest(emailRepo, &stubProfileRepo{}, &stubReportService{data: sampleReportData()}, sender)

	results, err := svc.SendScheduled(t.Context(), time.Monday)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "mon@example.com", results[0].Email)
	require.Len(t, emailRepo.logs, 1)
	assert.Equal(t, model.ReportTypeWeeklyScheduled, emailRepo.logs[0].ReportType)
}

func TestSendScheduledNoSubscribers(t *testing.T) {
	svc := newEmailServiceForTest(&stubEmailRepo{}, &stubProfileRepo{}, &stubReportService{data: sampleReportData()}, &stubMailer{})

	results, err := svc.SendScheduled(t.Context(), time.Wednesday)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestGetPreferenceFallsBackToProfile(t *testing.T) {
	email := "profile@example.com"
	svc := newEmailServiceForTest(&stubEmailRepo{}, &stubProfileRepo{profile: &model.Profile{UserID: 1, Email: &email}}, &stubReportService{data: sampleReportData()}, &stubMailer{})

	pref, err := svc.GetPreference(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "profile@example.com", pref.Email)
	assert.False(t, pref.WeeklyReportEnabled)
}

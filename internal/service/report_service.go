package service

import (
	"bytes"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"

	"Milestone/internal/api/dto"
	"Milestone/internal/pkg/consts"
	"Milestone/internal/pkg/minio"
	"Milestone/internal/pkg/redis"
	"Milestone/internal/pkg/report"
	"Milestone/internal/pkg/stats"
	"Milestone/internal/pkg/util"
	"Milestone/internal/repository"
)

type ReportService interface {
	BuildData(ctx context.Context, userID uint64, timeframe string) (*report.Data, error)
	GetData(ctx context.Context, userID uint64, timeframe string) (*dto.ReportDataDTO, error)
	DownloadPDF(ctx context.Context, userID uint64, timeframe string) (content []byte, filename, archiveURL string, err error)
}

type reportServiceImpl struct {
	metricRepo repository.MetricRepo
}

func NewReportService(metricRepo repository.MetricRepo) ReportService {
	return &reportServiceImpl{metricRepo: metricRepo}
}

// BuildData 组装报表载荷，HTML 与 PDF 渲染共用。
// 区间口径和原始报表一致：week 回看 7 天，month 回看 30 天。
// 区间内没有任何记录时返回 ErrNoMetricsData，渲染器不会被调用。
func (s *reportServiceImpl) BuildData(ctx context.Context, userID uint64, timeframe string) (*report.Data, error) {
	if timeframe != report.TimeframeWeek && timeframe != report.TimeframeMonth {
		return nil, ErrTimeframeInvalid
	}

	key := consts.ReportDataKey + timeframe + ":" + strconv.FormatUint(userID, 10)
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var data report.Data
		if err = json.Unmarshal([]byte(cached), &data); err == nil {
			return &data, nil
		}
	}

	daysBack := 7
	if timeframe == report.TimeframeMonth {
		daysBack = 30
	}
	end := getMidnight(time.Now())
	start := end.AddDate(0, 0, -daysBack)

	metrics, err := s.metricRepo.GetRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, ErrNoMetricsData
	}

	totals := stats.Aggregate(metrics)
	data := &report.Data{
		StartDate:   start,
		EndDate:     end,
		Timeframe:   timeframe,
		Totals:      totals,
		ContactRate: stats.Rate(totals.ContactsReached, totals.CallsMade),
		ApptRate:    stats.Rate(totals.AppointmentsSet, totals.ContactsReached),
	}

	cacheUntilMidnight(ctx, key, data)
	return data, nil
}

// GetData 数据接口返回。无数据不是错误，用 has_data=false 表达
func (s *reportServiceImpl) GetData(ctx context.Context, userID uint64, timeframe string) (*dto.ReportDataDTO, error) {
	data, err := s.BuildData(ctx, userID, timeframe)
	if err != nil {
		if err == ErrNoMetricsData {
			return &dto.ReportDataDTO{HasData: false}, nil
		}
		return nil, err
	}

	out := &dto.ReportDataDTO{
		HasData:     true,
		Timeframe:   data.Timeframe,
		StartDate:   util.FormatDate(data.StartDate),
		EndDate:     util.FormatDate(data.EndDate),
		ContactRate: data.ContactRate,
		ApptRate:    data.ApptRate,
	}
	_ = copier.Copy(&out.Totals, &data.Totals)
	return out, nil
}

// DownloadPDF 渲染 PDF 字节流；归档开启时顺手传一份到对象存储。
// 归档是尽力而为，失败只记日志不影响下载。
func (s *reportServiceImpl) DownloadPDF(ctx context.Context, userID uint64, timeframe string) ([]byte, string, string, error) {
	data, err := s.BuildData(ctx, userID, timeframe)
	if err != nil {
		return nil, "", "", err
	}

	now := time.Now()
	content, err := report.RenderPDF(*data, now)
	if err != nil {
		return nil, "", "", err
	}
	filename := report.FileName(timeframe, now)

	var archiveURL string
	if minio.Enabled() {
		objectName := fmt.Sprintf("%d/%s", userID, filename)
		if _, err = minio.UploadFile(ctx, objectName, bytes.NewReader(content), int64(len(content)), "application/pdf"); err != nil {
			log.Warn("report archive upload failed", "object", objectName, "err", err)
		} else {
			archiveURL = minio.GetPublicURL(objectName)
		}
	}

	return content, filename, archiveURL, nil
}

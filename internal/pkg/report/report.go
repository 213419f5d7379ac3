package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"Milestone/internal/pkg/stats"
)

const (
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
)

// Data 报表渲染入参，HTML 与 PDF 共用同一份数据，数值内容必须一致
type Data struct {
	StartDate   time.Time
	EndDate     time.Time
	Timeframe   string // week | month
	Totals      stats.Totals
	ContactRate float64 // 打电话 -> 触达
	ApptRate    float64 // 触达 -> 约见
}

// PeriodLabel 返回报表周期的展示文案
func (d Data) PeriodLabel() string {
	if d.Timeframe == TimeframeMonth {
		return "Monthly"
	}
	return "Weekly"
}

// Subject 邮件标题
func (d Data) Subject() string {
	return fmt.Sprintf("Your %s Real Estate Performance Report", d.PeriodLabel())
}

// FileName 下载文件名：performance-report-<period>-<iso date>.pdf
func FileName(timeframe string, now time.Time) string {
	return fmt.Sprintf("performance-report-%s-%s.pdf", timeframe, now.Format("2006-01-02"))
}

// metricRow 指标卡片的展示项，两个渲染器共用同一组顺序
type metricRow struct {
	Label string
	Value string
}

func metricRows(t stats.Totals) []metricRow {
	return []metricRow{
		{"Calls Made", strconv.Itoa(t.CallsMade)},
		{"Contacts Reached", strconv.Itoa(t.ContactsReached)},
		{"Appointments Set", strconv.Itoa(t.AppointmentsSet)},
		{"Appointments Attended", strconv.Itoa(t.AppointmentsAttended)},
		{"Listings Taken", strconv.Itoa(t.ListingsTaken)},
		{"Buyers Signed", strconv.Itoa(t.BuyersSigned)},
		{"Closed Deals", strconv.Itoa(t.ClosedDeals)},
		{"Volume Closed", "$" + formatMoney(t.VolumeClosed)},
	}
}

type conversionRow struct {
	Label string
	Value string
}

func conversionRows(d Data) []conversionRow {
	return []conversionRow{
		{"Calls → Contacts", fmt.Sprintf("%.1f%%", d.ContactRate)},
		{"Contacts → Appointments", fmt.Sprintf("%.1f%%", d.ApptRate)},
	}
}

// formatMoney 千分位展示金额，小数位仅在非整数时保留两位
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	frac := v - float64(whole)

	s := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()

	if frac > 0.005 {
		out += strings.TrimPrefix(fmt.Sprintf("%.2f", frac), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

func formatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

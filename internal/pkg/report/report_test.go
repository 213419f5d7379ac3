package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Milestone/internal/pkg/stats"
)

func sampleData() Data {
	return Data{
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Timeframe: TimeframeWeek,
		Totals: stats.Totals{
			CallsMade:            120,
			ContactsReached:      36,
			AppointmentsSet:      9,
			AppointmentsAttended: 7,
			ListingsTaken:        2,
			BuyersSigned:         1,
			ClosedDeals:          1,
			VolumeClosed:         450000,
		},
		ContactRate: 30,
		ApptRate:    25,
	}
}

func TestSubjectAndPeriodLabel(t *testing.T) {
	d := sampleData()
	assert.Equal(t, "Weekly", d.PeriodLabel())
	assert.Equal(t, "Your Weekly Real Estate Performance Report", d.Subject())

	d.Timeframe = TimeframeMonth
	assert.Equal(t, "Monthly", d.PeriodLabel())
	assert.Equal(t, "Your Monthly Real Estate Performance Report", d.Subject())
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "performance-report-week-2025-03-10.pdf", FileName(TimeframeWeek, now))
	assert.Equal(t, "performance-report-month-2025-03-10.pdf", FileName(TimeframeMonth, now))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0", formatMoney(0))
	assert.Equal(t, "950", formatMoney(950))
	assert.Equal(t, "450,000", formatMoney(450000))
	assert.Equal(t, "1,250,000.50", formatMoney(1250000.5))
}

func TestRenderHTML(t *testing.T) {
	d := sampleData()
	html, err := RenderHTML(d)
	require.NoError(t, err)

	assert.Contains(t, html, "Weekly Performance Report")
	assert.Contains(t, html, "3/3/2025")
	assert.Contains(t, html, "3/10/2025")
	assert.Contains(t, html, "$450,000")
	assert.Contains(t, html, "30.0%")
	assert.Contains(t, html, "25.0%")
	assert.Contains(t, html, "Keep up the great work!")
}

func TestRenderPDF(t *testing.T) {
	d := sampleData()
	out, err := RenderPDF(d, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out[:4]), "%PDF"))
}

// 同一份数据驱动两个渲染器，指标行内容应完全一致
func TestRowHelpersSharedByRenderers(t *testing.T) {
	d := sampleData()

	rows := metricRows(d.Totals)
	require.Len(t, rows, 8)
	assert.Equal(t, metricRow{"Calls Made", "120"}, rows[0])
	assert.Equal(t, metricRow{"Volume Closed", "$450,000"}, rows[7])

	convs := conversionRows(d)
	require.Len(t, convs, 2)
	assert.Equal(t, conversionRow{"Calls → Contacts", "30.0%"}, convs[0])
	assert.Equal(t, conversionRow{"Contacts → Appointments", "25.0%"}, convs[1])
}

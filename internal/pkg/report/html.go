package report

import (
	"bytes"
	"html/template"
)

// emailTemplate 邮件版式：头部（周期 + 日期区间）、指标九宫格、
// 两条转化率、固定的收尾语。除注入数值外没有任何个性化。
var emailTemplate = template.Must(template.New("report-email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your {{.PeriodLabel}} Real Estate Report</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f5f5f5; margin: 0; padding: 20px; }
    .container { max-width: 600px; margin: 0 auto; background-color: white; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px 20px; text-align: center; }
    .header h1 { margin: 0; font-size: 24px; }
    .header p { margin: 10px 0 0 0; opacity: 0.9; }
    .content { padding: 30px 20px; }
    .metric-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 15px; margin-bottom: 25px; }
    .metric-card { background: #f8f9fa; border-radius: 8px; padding: 15px; text-align: center; }
    .metric-value { font-size: 28px; font-weight: bold; color: #333; margin: 5px 0; }
    .metric-label { font-size: 12px; color: #666; text-transform: uppercase; letter-spacing: 0.5px; }
    .section-title { font-size: 18px; font-weight: 600; color: #333; margin: 25px 0 15px 0; }
    .conversion-row { display: flex; justify-content: space-between; align-items: center; padding: 12px; background: #f8f9fa; border-radius: 6px; margin-bottom: 10px; }
    .conversion-label { color: #666; font-size: 14px; }
    .conversion-value { font-weight: 600; color: #667eea; font-size: 16px; }
    .footer { background: #f8f9fa; padding: 20px; text-align: center; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>📊 Your {{.PeriodLabel}} Performance Report</h1>
      <p>{{.DateRange}}</p>
    </div>

    <div class="content">
      <div class="metric-grid">
{{- range .Metrics}}
        <div class="metric-card">
          <div class="metric-label">{{.Label}}</div>
          <div class="metric-value">{{.Value}}</div>
        </div>
{{- end}}
      </div>

      <h2 class="section-title">📈 Conversion Rates</h2>
{{- range .Conversions}}
      <div class="conversion-row">
        <span class="conversion-label">{{.Label}}</span>
        <span class="conversion-value">{{.Value}}</span>
      </div>
{{- end}}
    </div>

    <div class="footer">
      <p>Keep up the great work! 🎯</p>
    </div>
  </div>
</body>
</html>`))

type emailView struct {
	PeriodLabel string
	DateRange   string
	Metrics     []metricRow
	Conversions []conversionRow
}

// RenderHTML 渲染邮件正文
func RenderHTML(d Data) (string, error) {
	view := emailView{
		PeriodLabel: d.PeriodLabel(),
		DateRange:   formatDate(d.StartDate) + " - " + formatDate(d.EndDate),
		Metrics:     metricRows(d.Totals),
		Conversions: conversionRows(d),
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

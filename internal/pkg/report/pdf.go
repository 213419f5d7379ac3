package report

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// 主题色，与邮件模板里的 #667eea 保持一致
var (
	pdfPrimary = [3]int{102, 126, 234}
	pdfDark    = [3]int{51, 51, 51}
	pdfGray    = [3]int{102, 102, 102}
	pdfCardBG  = [3]int{248, 249, 250}
)

// RenderPDF 渲染单页 A4 报表：色带头部、双列指标卡片、
// 转化率条目和收尾语。数值与 HTML 渲染器来自同一份 Data。
func RenderPDF(d Data, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// 头部色带
	pdf.SetFillColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
	pdf.Rect(0, 0, 210, 45, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(0, 12)
	pdf.CellFormat(210, 12, d.PeriodLabel()+" Performance Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(0, 28)
	pdf.CellFormat(210, 8, formatDate(d.StartDate)+" - "+formatDate(d.EndDate), "", 1, "C", false, 0, "")

	// 指标区
	pdf.SetTextColor(pdfDark[0], pdfDark[1], pdfDark[2])
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(20, 54)
	pdf.CellFormat(0, 8, "Activity Metrics", "", 1, "L", false, 0, "")

	const gridTop = 70.0
	for i, m := range metricRows(d.Totals) {
		col := i % 2
		row := i / 2
		x := 20 + float64(col)*95
		y := gridTop + float64(row)*25

		pdf.SetFillColor(pdfCardBG[0], pdfCardBG[1], pdfCardBG[2])
		pdf.RoundedRect(x, y, 85, 20, 3, "1234", "F")

		pdf.SetTextColor(pdfGray[0], pdfGray[1], pdfGray[2])
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(x, y+3)
		pdf.CellFormat(85, 5, strings.ToUpper(m.Label), "", 0, "C", false, 0, "")

		pdf.SetTextColor(pdfDark[0], pdfDark[1], pdfDark[2])
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetXY(x, y+10)
		pdf.CellFormat(85, 8, m.Value, "", 0, "C", false, 0, "")
	}

	// 转化率区
	convTop := gridTop + 110
	pdf.SetTextColor(pdfDark[0], pdfDark[1], pdfDark[2])
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(20, convTop)
	pdf.CellFormat(0, 8, "Conversion Rates", "", 1, "L", false, 0, "")

	for i, conv := range conversionRows(d) {
		y := convTop + 12 + float64(i)*18

		pdf.SetFillColor(pdfCardBG[0], pdfCardBG[1], pdfCardBG[2])
		pdf.RoundedRect(20, y, 170, 15, 3, "1234", "F")

		pdf.SetTextColor(pdfGray[0], pdfGray[1], pdfGray[2])
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(25, y+4)
		// Helvetica 内置字体不含箭头字符，换用文字连接词
		pdf.CellFormat(100, 7, strings.ReplaceAll(conv.Label, " → ", " to "), "", 0, "L", false, 0, "")

		pdf.SetTextColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(20, y+4)
		pdf.CellFormat(165, 7, conv.Value, "", 0, "R", false, 0, "")
	}

	// 页脚
	pdf.SetTextColor(pdfGray[0], pdfGray[1], pdfGray[2])
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(0, 276)
	pdf.CellFormat(210, 6, "Keep up the great work!", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(0, 283)
	pdf.CellFormat(210, 5, "Generated on "+now.Format("1/2/2006, 3:04:05 PM"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

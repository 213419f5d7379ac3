package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"Milestone/internal/api/dto"
	"Milestone/internal/pkg/response"
	"Milestone/internal/pkg/util"
	"Milestone/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
	emailSvc  service.EmailService
}

func NewReportHandler(reportSvc service.ReportService, emailSvc service.EmailService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		emailSvc:  emailSvc,
	}
}

func (s *ReportHandler) GetData(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", "week")

	userID := c.GetUint64("user_id")
	data, err := s.reportSvc.GetData(c.Request.Context(), userID, timeframe)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

// Download 返回 PDF 附件。归档成功时通过响应头回传归档地址
func (s *ReportHandler) Download(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", "week")

	userID := c.GetUint64("user_id")
	content, filename, archiveURL, err := s.reportSvc.DownloadPDF(c.Request.Context(), userID, timeframe)
	if err != nil {
		response.Error(c, err)
		return
	}

	if archiveURL != "" {
		c.Header("X-Archive-URL", archiveURL)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", content)
}

func (s *ReportHandler) SendEmail(c *gin.Context) {
	var req dto.ReportEmailDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	// 不带 user_id 时对所有开启订阅的用户批量发送
	results, err := s.emailSvc.SendManual(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, results)
}

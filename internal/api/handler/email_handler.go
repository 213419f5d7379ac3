package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Milestone/internal/api/dto"
	"Milestone/internal/pkg/response"
	"Milestone/internal/pkg/util"
	"Milestone/internal/service"
)

type EmailHandler struct {
	emailSvc service.EmailService
}

func NewEmailHandler(emailSvc service.EmailService) *EmailHandler {
	return &EmailHandler{
		emailSvc: emailSvc,
	}
}

func (s *EmailHandler) UpsertPreference(c *gin.Context) {
	var req dto.EmailPreferenceDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	pref, err := s.emailSvc.UpsertPreference(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pref)
}

func (s *EmailHandler) GetPreference(c *gin.Context) {
	userID := c.GetUint64("user_id")
	pref, err := s.emailSvc.GetPreference(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pref)
}

func (s *EmailHandler) ListLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	userID := c.GetUint64("user_id")
	logs, err := s.emailSvc.ListLogs(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, logs)
}

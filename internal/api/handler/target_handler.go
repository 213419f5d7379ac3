package handler

import (
	"github.com/gin-gonic/gin"

	"Milestone/internal/api/dto"
	"Milestone/internal/pkg/response"
	"Milestone/internal/pkg/util"
	"Milestone/internal/service"
)

type TargetHandler struct {
	targetSvc service.TargetService
}

func NewTargetHandler(targetSvc service.TargetService) *TargetHandler {
	return &TargetHandler{
		targetSvc: targetSvc,
	}
}

func (s *TargetHandler) Upsert(c *gin.Context) {
	var req dto.TargetUpsertDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	target, err := s.targetSvc.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, target)
}

func (s *TargetHandler) Get(c *gin.Context) {
	userID := c.GetUint64("user_id")
	target, err := s.targetSvc.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, target)
}

func (s *TargetHandler) DailyProgress(c *gin.Context) {
	userID := c.GetUint64("user_id")
	progress, err := s.targetSvc.DailyProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}

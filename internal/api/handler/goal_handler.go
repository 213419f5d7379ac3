package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Milestone/internal/api/dto"
	"Milestone/internal/pkg/response"
	"Milestone/internal/pkg/util"
	"Milestone/internal/service"
)

type GoalHandler struct {
	goalSvc service.GoalService
}

func NewGoalHandler(goalSvc service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalSvc: goalSvc,
	}
}

func (s *GoalHandler) Upsert(c *gin.Context) {
	var req dto.GoalUpsertDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	goal, err := s.goalSvc.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goal)
}

func (s *GoalHandler) Get(c *gin.Context) {
	var year int
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		year = parsed
	}

	userID := c.GetUint64("user_id")
	goal, err := s.goalSvc.Get(c.Request.Context(), userID, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, goal)
}

func (s *GoalHandler) Progress(c *gin.Context) {
	userID := c.GetUint64("user_id")
	progress, err := s.goalSvc.Progress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"Milestone/internal/api/dto"
	"Milestone/internal/pkg/response"
	"Milestone/internal/pkg/util"
	"Milestone/internal/service"
)

type MetricHandler struct {
	metricSvc service.MetricService
}

func NewMetricHandler(metricSvc service.MetricService) *MetricHandler {
	return &MetricHandler{
		metricSvc: metricSvc,
	}
}

func (s *MetricHandler) Upsert(c *gin.Context) {
	var req dto.MetricUpsertDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	metric, err := s.metricSvc.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metric)
}

func (s *MetricHandler) GetToday(c *gin.Context) {
	userID := c.GetUint64("user_id")
	metric, err := s.metricSvc.GetToday(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metric)
}

func (s *MetricHandler) GetRange(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	metrics, err := s.metricSvc.GetRange(c.Request.Context(), userID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

func (s *MetricHandler) GetSummary(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", "week")

	userID := c.GetUint64("user_id")
	summary, err := s.metricSvc.GetSummary(c.Request.Context(), userID, timeframe)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Milestone/internal/api/dto"
	"Milestone/internal/pkg/response"
	"Milestone/internal/pkg/util"
	"Milestone/internal/repository"
	"Milestone/internal/service"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactSvc: contactSvc,
	}
}

func (s *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactUpsertDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	contact, err := s.contactSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contact)
}

func (s *ContactHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ContactUpsertDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	contact, err := s.contactSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contact)
}

func (s *ContactHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	contact, err := s.contactSvc.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contact)
}

func (s *ContactHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	query := repository.ContactQuery{
		Keyword:     c.Query("q"),
		ContactType: c.Query("type"),
		Status:      c.Query("status"),
		Page:        page,
		PageSize:    pageSize,
	}

	userID := c.GetUint64("user_id")
	result, err := s.contactSvc.List(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ContactHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	if err = s.contactSvc.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ImportCSV multipart 上传，字段名 file
func (s *ContactHandler) ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, service.ErrCSVInvalid)
		return
	}
	defer file.Close()

	userID := c.GetUint64("user_id")
	result, err := s.contactSvc.ImportCSV(c.Request.Context(), userID, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ContactHandler) AddInteraction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.InteractionCreateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	interaction, err := s.contactSvc.AddInteraction(c.Request.Context(), userID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, interaction)
}

func (s *ContactHandler) ListInteractions(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	interactions, err := s.contactSvc.ListInteractions(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, interactions)
}

func parseIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

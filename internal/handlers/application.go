package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookie-sid/job-application-tracker/internal/auth"
	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
	"github.com/cookie-sid/job-application-tracker/internal/dto"
	"github.com/cookie-sid/job-application-tracker/internal/service"
)

// ApplicationHandler handles job application CRUD.
type ApplicationHandler struct {
	svc *service.ApplicationService
	log *zap.Logger
}

// NewApplicationHandler returns a new ApplicationHandler.
func NewApplicationHandler(svc *service.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Track a new job application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateApplicationRequest  true  "Application"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	a, err := h.svc.Create(c.Request.Context(), dom.Application{
		UserID:          user.ID,
		JobURL:          req.JobURL,
		Company:         req.Company,
		Position:        req.Position,
		JobDescription:  req.JobDescription,
		SkillsMatched:   req.SkillsMatched,
		MatchPercentage: req.MatchPercentage,
		Status:          req.Status,
		SalaryRange:     req.SalaryRange,
		Location:        req.Location,
		WorkType:        req.WorkType,
		Notes:           req.Notes,
	})
	if err != nil {
		h.log.Error("create application failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "application": dto.ApplicationToResponse(a)})
}

// List godoc
// @Summary      List the current user's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	list, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("list applications failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": dto.ApplicationsToResponses(list)})
}

// Search godoc
// @Summary      Search applications by company or position
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search query"
// @Success      200  {object}  map[string]interface{}
// @Router       /applications/search [get]
func (h *ApplicationHandler) Search(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	list, err := h.svc.Search(c.Request.Context(), user.ID, c.Query("q"))
	if err != nil {
		h.log.Error("search applications failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": dto.ApplicationsToResponses(list)})
}

// Stats godoc
// @Summary      Application counts per status
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /applications/stats [get]
func (h *ApplicationHandler) Stats(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	stats, err := h.svc.Stats(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("application stats failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetByID godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	a, err := h.svc.GetByID(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Application not found.")
			return
		}
		h.log.Error("get application failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": dto.ApplicationToResponse(a)})
}

// Update godoc
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Application ID"
// @Param        body  body      dto.UpdateApplicationRequest  true  "Partial update"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /applications/{id} [patch]
func (h *ApplicationHandler) Update(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	a, err := h.svc.Update(c.Request.Context(), user.ID, c.Param("id"), service.ApplicationPatch{
		JobURL:          req.JobURL,
		Company:         req.Company,
		Position:        req.Position,
		JobDescription:  req.JobDescription,
		SkillsMatched:   req.SkillsMatched,
		MatchPercentage: req.MatchPercentage,
		Status:          req.Status,
		Notes:           req.Notes,
		SalaryRange:     req.SalaryRange,
		Location:        req.Location,
		WorkType:        req.WorkType,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Application not found.")
			return
		}
		h.log.Error("update application failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": dto.ApplicationToResponse(a)})
}

// Delete godoc
// @Summary      Delete an application
// @Tags         applications
// @Security     BearerAuth
// @Param        id   path  string  true  "Application ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	if err := h.svc.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Application not found.")
			return
		}
		h.log.Error("delete application failed", zap.Error(err))
		serverError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

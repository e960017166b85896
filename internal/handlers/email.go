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

// EmailHandler handles the application email log.
type EmailHandler struct {
	svc *service.EmailService
	log *zap.Logger
}

// NewEmailHandler returns a new EmailHandler.
func NewEmailHandler(svc *service.EmailService, log *zap.Logger) *EmailHandler {
	return &EmailHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Log an email sent to a recruiter
// @Tags         emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEmailRequest  true  "Email"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /emails [post]
func (h *EmailHandler) Create(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var req dto.CreateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	email, err := h.svc.Create(c.Request.Context(), dom.Email{
		UserID:            user.ID,
		ApplicationID:     req.ApplicationID,
		RecruiterID:       req.RecruiterID,
		Subject:           req.Subject,
		Body:              req.Body,
		EmailType:         req.EmailType,
		FollowUpScheduled: req.FollowUpScheduled,
	})
	if err != nil {
		h.log.Error("create email failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "email": dto.EmailToResponse(email)})
}

// List godoc
// @Summary      List logged emails, newest sent first
// @Tags         emails
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /emails [get]
func (h *EmailHandler) List(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	list, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("list emails failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "emails": dto.EmailsToResponses(list)})
}

// GetByID godoc
// @Summary      Get one logged email
// @Tags         emails
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Email ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /emails/{id} [get]
func (h *EmailHandler) GetByID(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	email, err := h.svc.GetByID(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Email not found.")
			return
		}
		h.log.Error("get email failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "email": dto.EmailToResponse(email)})
}

// MarkResponded godoc
// @Summary      Record that the recruiter responded
// @Tags         emails
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Email ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /emails/{id}/responded [post]
func (h *EmailHandler) MarkResponded(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	email, err := h.svc.MarkResponded(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Email not found.")
			return
		}
		h.log.Error("mark email responded failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "email": dto.EmailToResponse(email)})
}

// Delete godoc
// @Summary      Delete a logged email
// @Tags         emails
// @Security     BearerAuth
// @Param        id   path  string  true  "Email ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}
// @Router       /emails/{id} [delete]
func (h *EmailHandler) Delete(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	if err := h.svc.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Email not found.")
			return
		}
		h.log.Error("delete email failed", zap.Error(err))
		serverError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

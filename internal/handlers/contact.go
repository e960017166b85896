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

// ContactHandler handles recruiter contact CRUD.
type ContactHandler struct {
	svc *service.ContactService
	log *zap.Logger
}

// NewContactHandler returns a new ContactHandler.
func NewContactHandler(svc *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Add a recruiter contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateContactRequest  true  "Contact"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	contact, err := h.svc.Create(c.Request.Context(), dom.Contact{
		UserID:           user.ID,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		Position:         req.Position,
		LinkedinURL:      req.LinkedinURL,
		Notes:            req.Notes,
		Status:           req.Status,
		FollowUpReminder: req.FollowUpReminder,
	})
	if err != nil {
		h.log.Error("create contact failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "contact": dto.ContactToResponse(contact)})
}

// List godoc
// @Summary      List the current user's contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	list, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("list contacts failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contacts": dto.ContactsToResponses(list)})
}

// GetByID godoc
// @Summary      Get one contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /contacts/{id} [get]
func (h *ContactHandler) GetByID(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	contact, err := h.svc.GetByID(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Contact not found.")
			return
		}
		h.log.Error("get contact failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": dto.ContactToResponse(contact)})
}

// Update godoc
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Contact ID"
// @Param        body  body      dto.UpdateContactRequest  true  "Partial update"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /contacts/{id} [patch]
func (h *ContactHandler) Update(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	contact, err := h.svc.Update(c.Request.Context(), user.ID, c.Param("id"), service.ContactPatch{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Position:    req.Position,
		LinkedinURL: req.LinkedinURL,
		Notes:       req.Notes,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Contact not found.")
			return
		}
		h.log.Error("update contact failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": dto.ContactToResponse(contact)})
}

// Delete godoc
// @Summary      Delete a contact
// @Tags         contacts
// @Security     BearerAuth
// @Param        id   path  string  true  "Contact ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	if err := h.svc.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "Contact not found.")
			return
		}
		h.log.Error("delete contact failed", zap.Error(err))
		serverError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookie-sid/job-application-tracker/internal/auth"
	"github.com/cookie-sid/job-application-tracker/internal/dto"
	"github.com/cookie-sid/job-application-tracker/internal/service"
	"github.com/cookie-sid/job-application-tracker/internal/validation"
)

// AuthHandler handles registration, login, and the profile endpoints.
type AuthHandler struct {
	tokens *auth.TokenService
	users  *service.UserService
	log    *zap.Logger
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.TokenService, users *service.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, users: users, log: log}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Registration fields"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			failValidation(c, verr)
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			fail(c, http.StatusConflict, "An account with this email already exists.")
			return
		}
		h.log.Error("register failed", zap.Error(err))
		serverError(c)
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    dto.UserToResponse(user),
	})
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	user, err := h.users.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// one message for unknown email and wrong password
			fail(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		serverError(c)
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    dto.UserToResponse(user),
	})
}

// GetProfile godoc
// @Summary      Current user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	current, ok := auth.CurrentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required.")
		return
	}
	user, err := h.users.GetProfile(c.Request.Context(), current.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "User not found.")
			return
		}
		h.log.Error("get profile failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": dto.UserToResponse(user)})
}

// UpdateProfile godoc
// @Summary      Update first name and/or skills
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "Fields to update"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	current, ok := auth.CurrentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required.")
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), current.ID, req.FirstName, req.Skills)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			failValidation(c, verr)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "User not found.")
			return
		}
		h.log.Error("update profile failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": dto.UserToResponse(user)})
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Requires the current password again even with a valid token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ChangePasswordRequest  true  "Current and new password"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Router       /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	current, ok := auth.CurrentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required.")
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}
	err := h.users.ChangePassword(c.Request.Context(), current.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			failValidation(c, verr)
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "Current password is incorrect.")
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			fail(c, http.StatusNotFound, "User not found.")
			return
		}
		h.log.Error("change password failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully."})
}
